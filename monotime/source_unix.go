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

//go:build linux || freebsd || netbsd || openbsd || (darwin && !cgo)

package monotime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type clockGettimeSource struct{}

// PlatformSource returns the CLOCK_MONOTONIC counter, in nanoseconds.
func PlatformSource() Source {
	return clockGettimeSource{}
}

func (clockGettimeSource) Name() string { return "clock_gettime(CLOCK_MONOTONIC)" }

func (s clockGettimeSource) Timebase() (Timebase, error) {
	// Probe once so an unsupported clock fails construction instead of reads.
	if _, err := s.Ticks(); err != nil {
		return Timebase{}, err
	}
	return NanosecondTimebase, nil
}

func (clockGettimeSource) Ticks() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("clock_gettime: %w", err)
	}
	return uint64(ts.Nano()), nil
}
