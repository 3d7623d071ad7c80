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

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// State is the lifecycle of the process-wide timer.
type State int32

const (
	// Uninitialized means Default has not been called yet.
	Uninitialized State = iota
	// Ready means the process-wide timer is available.
	Ready
	// Failed means the platform source could not be initialised.
	Failed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

var (
	defaultState atomic.Int32
	defaultTimer = sync.OnceValues(func() (*Timer, error) {
		t, err := New(PlatformSource())
		if err != nil {
			Logger().Warn("process timer unavailable", zap.Error(err))
			defaultState.Store(int32(Failed))
			return nil, err
		}
		defaultState.Store(int32(Ready))
		return t, nil
	})
)

// Default returns the process-wide timer, building it on first use.
// Every caller observes the same Timer, or the same error.
func Default() (*Timer, error) {
	return defaultTimer()
}

// DefaultState reports the lifecycle state of the process-wide timer without
// initialising it.
func DefaultState() State {
	return State(defaultState.Load())
}

// GetTime returns the seconds elapsed since the process-wide timer was built.
//
// It returns 0.0 if the timer failed to initialise. That value collides with
// a genuine zero reading; callers that must tell them apart should use
// Default and Timer.Elapsed.
func GetTime() float64 {
	t, err := Default()
	if err != nil {
		return 0
	}
	return t.Seconds()
}
