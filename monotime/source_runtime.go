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

package monotime

import "time"

type runtimeSource struct {
	epoch time.Time
}

// RuntimeSource returns a Source backed by the Go runtime monotonic clock.
// It counts nanoseconds from the moment it was created.
func RuntimeSource() Source {
	return &runtimeSource{epoch: time.Now()}
}

func (s *runtimeSource) Name() string { return "runtime monotonic" }

func (s *runtimeSource) Timebase() (Timebase, error) { return NanosecondTimebase, nil }

func (s *runtimeSource) Ticks() (uint64, error) {
	return uint64(time.Since(s.epoch)), nil
}
