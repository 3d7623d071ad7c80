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

// Package monotime provides a zero-based monotonic clock that reports elapsed
// seconds as float64.
//
// # Clock Sources
//
// A Source wraps one platform tick counter together with its timebase, the
// ratio Numer/Denom of nanoseconds per raw tick. The platform source is
// selected at build time:
//   - darwin (cgo): mach_absolute_time and mach_timebase_info
//   - linux, freebsd, netbsd, openbsd, darwin (no cgo): clock_gettime(CLOCK_MONOTONIC)
//   - windows: QueryPerformanceCounter and QueryPerformanceFrequency
//   - other platforms: the Go runtime monotonic clock
//
// RuntimeSource is available everywhere. The process-wide timer always uses
// PlatformSource; build a Timer with New to pick another source.
//
// # Timers
//
// A Timer captures a baseline tick count and the source frequency once, at
// construction, and is immutable afterwards:
//
//	t, err := monotime.New(monotime.PlatformSource())
//	if err != nil {
//	    return err
//	}
//	start, _ := t.Elapsed()
//	work()
//	end, _ := t.Elapsed()
//	fmt.Printf("took %.6fs\n", end-start)
//
// Readings are immune to wall-clock adjustments and suited to intervals,
// not to absolute timestamps.
//
// # Process-wide Timer
//
// Default lazily builds one Timer over the platform source, exactly once.
// GetTime flattens it to a single float64 for C callers; it returns 0.0 when
// the timer could not be initialised, which is indistinguishable from a
// genuine zero reading. Use Default and Elapsed when the difference matters.
package monotime
