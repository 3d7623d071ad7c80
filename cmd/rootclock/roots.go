// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/rootclock/newton"
)

type rootOp func(float64) newton.Result

var (
	sqrtOp rootOp = newton.SqrtResult
	cbrtOp rootOp = newton.CbrtResult
)

func newRootsCmd(a *app, name, short string, op rootOp) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   name + " <x>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := message.NewPrinter(language.English)
			for _, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid input %q: %w", arg, err)
				}
				r := op(x)
				p.Fprintf(cmd.OutOrStdout(), "%s(%s) = %s (%d iterations)\n",
					name, formatFloat(x), formatFloat(r.Value), r.Iterations)
				if r.Converged() {
					continue
				}
				a.log.Warn("root not converged",
					zap.String("op", name),
					zap.Float64("x", x),
					zap.Float64("estimate", r.Value),
					zap.Error(r.Err))
				if strict {
					return fmt.Errorf("%s(%s): %w", name, formatFloat(x), r.Err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on domain errors and unmet tolerance")
	return cmd
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
