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
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/rootclock/newton"
)

func newTimeCmd(a *app) *cobra.Command {
	var (
		frames     int
		probeEvery int
		interval   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Print elapsed seconds once per frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return errors.New("--frames must be at least 1")
			}
			timer, err := a.timer()
			if err != nil {
				return fmt.Errorf("timer unavailable: %w", err)
			}
			a.log.Debug("frame loop",
				zap.String("source", timer.Info().Source),
				zap.Int("frames", frames),
				zap.Duration("interval", interval))

			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			for i := 0; i < frames; i++ {
				if i > 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(interval):
					}
				}
				s, err := timer.Elapsed()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "frame %d: %.6f\n", i, s)

				if probeEvery > 0 && (i+1)%probeEvery == 0 {
					fmt.Fprintf(w, "sqrt(2) = %s\n", formatFloat(newton.Sqrt(2)))
					fmt.Fprintf(w, "cbrt(27) = %s\n", formatFloat(newton.Cbrt(27)))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 10, "number of frames")
	cmd.Flags().DurationVar(&interval, "interval", 16*time.Millisecond, "delay between frames")
	cmd.Flags().IntVar(&probeEvery, "probe-every", 0, "print sqrt(2) and cbrt(27) every N frames (0 disables)")
	return cmd
}
