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

// Command rootclock exercises the rootclock library from a terminal: it
// prints Newton roots, runs a timed frame loop and reports the clock source.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/rootclock/monotime"
)

const (
	sourcePlatform = "platform"
	sourceRuntime  = "runtime"
)

type app struct {
	logLevel string
	source   string
	log      *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:          "rootclock",
		Short:        "Newton roots and a monotonic timer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.source, "source", sourcePlatform, "clock source (platform, runtime)")

	rootCmd.AddCommand(
		newRootsCmd(a, "sqrt", "Square root by Newton's method", sqrtOp),
		newRootsCmd(a, "cbrt", "Cube root by Newton's method", cbrtOp),
		newTimeCmd(a),
		newInfoCmd(a),
	)
	return rootCmd
}

func (a *app) setup() error {
	lvl, err := zapcore.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if a.source != sourcePlatform && a.source != sourceRuntime {
		return fmt.Errorf("invalid --source %q: want %s or %s", a.source, sourcePlatform, sourceRuntime)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("logger not built: %w", err)
	}
	a.log = logger
	monotime.SetLogger(logger.Named("monotime"))
	return nil
}

// timer returns the timer selected by --source. The platform source is the
// process-wide timer, the one get_time reads.
func (a *app) timer() (*monotime.Timer, error) {
	if a.source == sourceRuntime {
		return monotime.New(monotime.RuntimeSource())
	}
	return monotime.Default()
}
