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

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/rootclock/internal/cpuinfo"
	"github.com/ajroetker/rootclock/monotime"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the clock source and the CPU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timer, err := a.timer()
			if err != nil {
				return fmt.Errorf("timer unavailable: %w", err)
			}
			info := timer.Info()
			platform := cpuinfo.CurrentPlatform()

			w := cmd.OutOrStdout()
			p := message.NewPrinter(language.English)
			p.Fprintf(w, "GOOS: %s\n", platform.GOOS)
			p.Fprintf(w, "GOARCH: %s\n", platform.GOARCH)
			p.Fprintf(w, "NumCPU: %d\n", platform.NumCPU)
			fmt.Fprintln(w)

			p.Fprintf(w, "Clock source: %s\n", info.Source)
			p.Fprintf(w, "Timebase: %s\n", info.Timebase.String())
			p.Fprintf(w, "Frequency: %d Hz\n", info.Frequency)
			fmt.Fprintf(w, "Resolution: %.2f ns\n", info.ResolutionNs)
			fmt.Fprintf(w, "Process timer: %s\n", monotime.DefaultState())

			features := cpuinfo.Features()
			if len(features) == 0 {
				return nil
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "=== golang.org/x/sys/cpu (%s) ===\n", platform.GOARCH)
			for _, f := range features {
				if f.Note != "" {
					fmt.Fprintf(w, "  Has%-8s %v (%s)\n", f.Name+":", f.Enabled, f.Note)
				} else {
					fmt.Fprintf(w, "  Has%-8s %v\n", f.Name+":", f.Enabled)
				}
			}
			return nil
		},
	}
}
