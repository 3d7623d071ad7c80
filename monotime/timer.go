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
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrZeroTimebase is returned when a source reports a timebase that
	// cannot be converted to a non-zero tick frequency.
	ErrZeroTimebase = errors.New("monotime: zero timebase")

	// ErrNoSource is returned by New when no Source is given.
	ErrNoSource = errors.New("monotime: nil source")

	// ErrUninitialized is returned when reading a Timer that was never built.
	ErrUninitialized = errors.New("monotime: timer not initialized")
)

// Timebase expresses the duration of one raw tick as Numer/Denom nanoseconds.
type Timebase struct {
	Numer uint32
	Denom uint32
}

// NanosecondTimebase is the timebase of sources that count nanoseconds.
var NanosecondTimebase = Timebase{Numer: 1, Denom: 1}

// TicksPerSecond returns Denom * 1e9 / Numer truncated to an integer.
func (tb Timebase) TicksPerSecond() (uint64, error) {
	if tb.Numer == 0 || tb.Denom == 0 {
		return 0, fmt.Errorf("%w: %d/%d", ErrZeroTimebase, tb.Numer, tb.Denom)
	}
	freq := uint64(float64(tb.Denom) * 1e9 / float64(tb.Numer))
	if freq == 0 {
		return 0, fmt.Errorf("%w: %d/%d is below one tick per second", ErrZeroTimebase, tb.Numer, tb.Denom)
	}
	return freq, nil
}

// String returns the timebase as "numer/denom ns".
func (tb Timebase) String() string {
	return fmt.Sprintf("%d/%d ns", tb.Numer, tb.Denom)
}

// Source is a monotonic raw tick counter.
type Source interface {
	// Name identifies the underlying platform primitive.
	Name() string
	// Timebase reports the tick-to-nanosecond ratio.
	Timebase() (Timebase, error)
	// Ticks returns the current raw tick count.
	Ticks() (uint64, error)
}

// Info describes a Timer's source.
type Info struct {
	Source       string
	Timebase     Timebase
	Frequency    uint64
	ResolutionNs float64
}

// Timer reports seconds elapsed since its construction.
// A Timer is immutable and safe for concurrent use.
type Timer struct {
	source    Source
	timebase  Timebase
	baseline  uint64
	frequency uint64
}

// New queries the timebase of src and captures the current tick count as the
// baseline.
func New(src Source) (*Timer, error) {
	if src == nil {
		return nil, ErrNoSource
	}

	tb, err := src.Timebase()
	if err != nil {
		return nil, fmt.Errorf("monotime: %s timebase: %w", src.Name(), err)
	}
	freq, err := tb.TicksPerSecond()
	if err != nil {
		return nil, fmt.Errorf("monotime: %s: %w", src.Name(), err)
	}
	baseline, err := src.Ticks()
	if err != nil {
		return nil, fmt.Errorf("monotime: %s baseline: %w", src.Name(), err)
	}

	Logger().Debug("timer initialized",
		zap.String("source", src.Name()),
		zap.Stringer("timebase", tb),
		zap.Uint64("frequency", freq),
		zap.Uint64("baseline", baseline))

	return &Timer{
		source:    src,
		timebase:  tb,
		baseline:  baseline,
		frequency: freq,
	}, nil
}

// Elapsed returns the seconds elapsed since the baseline.
// Readings never go below zero.
func (t *Timer) Elapsed() (float64, error) {
	if t == nil {
		return 0, ErrUninitialized
	}
	now, err := t.source.Ticks()
	if err != nil {
		return 0, fmt.Errorf("monotime: %s: %w", t.source.Name(), err)
	}
	if now < t.baseline {
		return 0, nil
	}
	return float64(now-t.baseline) / float64(t.frequency), nil
}

// Seconds is Elapsed with errors flattened to 0.0.
func (t *Timer) Seconds() float64 {
	s, err := t.Elapsed()
	if err != nil {
		return 0
	}
	return s
}

// Info describes the timer's source.
func (t *Timer) Info() Info {
	return Info{
		Source:       t.source.Name(),
		Timebase:     t.timebase,
		Frequency:    t.frequency,
		ResolutionNs: ResolutionNs(t.frequency),
	}
}

// ResolutionNs returns the duration of one tick in nanoseconds for a source
// running at freq ticks per second.
func ResolutionNs(freq uint64) float64 {
	if freq == 0 {
		return 0
	}
	return 1_000_000_000.0 / float64(freq)
}
