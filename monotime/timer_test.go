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
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeSource is a manually advanced tick counter.
type fakeSource struct {
	ticks       atomic.Uint64
	timebase    Timebase
	timebaseErr error
	ticksErr    error
}

func newFakeSource(start uint64, tb Timebase) *fakeSource {
	s := &fakeSource{timebase: tb}
	s.ticks.Store(start)
	return s
}

func (s *fakeSource) Name() string { return "fake" }

func (s *fakeSource) Timebase() (Timebase, error) { return s.timebase, s.timebaseErr }

func (s *fakeSource) Ticks() (uint64, error) {
	if s.ticksErr != nil {
		return 0, s.ticksErr
	}
	return s.ticks.Load(), nil
}

func (s *fakeSource) advance(n uint64) { s.ticks.Add(n) }

// millisecondTimebase makes one tick last one millisecond.
var millisecondTimebase = Timebase{Numer: 1_000_000, Denom: 1}

func TestTimebase_TicksPerSecond(t *testing.T) {
	testCases := []struct {
		name string
		tb   Timebase
		want uint64
	}{
		{"nanoseconds", NanosecondTimebase, 1_000_000_000},
		{"apple silicon", Timebase{Numer: 125, Denom: 3}, 24_000_000},
		{"milliseconds", millisecondTimebase, 1000},
		{"qpc 10MHz", Timebase{Numer: 100, Denom: 1}, 10_000_000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.tb.TicksPerSecond()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTimebase_Zero(t *testing.T) {
	for _, tb := range []Timebase{{}, {Numer: 0, Denom: 1}, {Numer: 1, Denom: 0}, {Numer: math.MaxUint32, Denom: 1}} {
		_, err := tb.TicksPerSecond()
		require.ErrorIs(t, err, ErrZeroTimebase, "timebase %v", tb)
	}
}

func TestNew_ElapsedFromBaseline(t *testing.T) {
	src := newFakeSource(5000, millisecondTimebase)
	timer, err := New(src)
	require.NoError(t, err)

	s, err := timer.Elapsed()
	require.NoError(t, err)
	require.Zero(t, s)

	src.advance(250)
	s, err = timer.Elapsed()
	require.NoError(t, err)
	require.InDelta(t, 0.25, s, 1e-12)

	src.advance(1750)
	require.InDelta(t, 2.0, timer.Seconds(), 1e-12)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNoSource)

	broken := errors.New("no clock")

	src := newFakeSource(0, NanosecondTimebase)
	src.timebaseErr = broken
	_, err = New(src)
	require.ErrorIs(t, err, broken)

	src = newFakeSource(0, Timebase{})
	_, err = New(src)
	require.ErrorIs(t, err, ErrZeroTimebase)

	src = newFakeSource(0, NanosecondTimebase)
	src.ticksErr = broken
	_, err = New(src)
	require.ErrorIs(t, err, broken)
}

func TestTimer_ReadErrorFlattensToZero(t *testing.T) {
	src := newFakeSource(0, millisecondTimebase)
	timer, err := New(src)
	require.NoError(t, err)
	src.advance(1000)

	broken := errors.New("counter gone")
	src.ticksErr = broken

	_, err = timer.Elapsed()
	require.ErrorIs(t, err, broken)
	require.Zero(t, timer.Seconds())
}

func TestTimer_BackwardsClockClampsToZero(t *testing.T) {
	src := newFakeSource(1000, millisecondTimebase)
	timer, err := New(src)
	require.NoError(t, err)

	src.ticks.Store(10)
	s, err := timer.Elapsed()
	require.NoError(t, err)
	require.Zero(t, s)
}

func TestTimer_Nil(t *testing.T) {
	var timer *Timer
	_, err := timer.Elapsed()
	require.ErrorIs(t, err, ErrUninitialized)
	require.Zero(t, timer.Seconds())
}

func TestTimer_Info(t *testing.T) {
	timer, err := New(newFakeSource(0, Timebase{Numer: 125, Denom: 3}))
	require.NoError(t, err)

	info := timer.Info()
	require.Equal(t, "fake", info.Source)
	require.Equal(t, Timebase{Numer: 125, Denom: 3}, info.Timebase)
	require.Equal(t, uint64(24_000_000), info.Frequency)
	require.InDelta(t, 41.67, info.ResolutionNs, 0.01)
	require.Equal(t, "125/3 ns", info.Timebase.String())
}

func TestNew_LogsInitialization(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	_, err := New(newFakeSource(42, millisecondTimebase))
	require.NoError(t, err)

	entries := logs.FilterMessage("timer initialized").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "fake", fields["source"])
	require.Equal(t, uint64(1000), fields["frequency"])
	require.Equal(t, uint64(42), fields["baseline"])
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	l := zap.NewExample()
	SetLogger(l)
	require.Same(t, l, Logger())

	SetLogger(nil)
	require.NotNil(t, Logger())
	require.Same(t, nopLogger, Logger())
}

func TestSetLogger_ConcurrentWithTimers(t *testing.T) {
	defer SetLogger(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(zap.NewNop())
		}()
		go func() {
			defer wg.Done()
			_, err := New(newFakeSource(0, millisecondTimebase))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestSources_Monotonic(t *testing.T) {
	for _, src := range []Source{PlatformSource(), RuntimeSource()} {
		t.Run(src.Name(), func(t *testing.T) {
			timer, err := New(src)
			require.NoError(t, err)
			t.Logf("Info: %+v", timer.Info())

			first, err := timer.Elapsed()
			require.NoError(t, err)
			require.GreaterOrEqual(t, first, 0.0)
			require.Less(t, first, 1.0)

			prev := first
			for i := 0; i < 1000; i++ {
				cur, err := timer.Elapsed()
				require.NoError(t, err)
				require.GreaterOrEqual(t, cur, prev)
				prev = cur
			}
		})
	}
}

func TestSources_TrackSleep(t *testing.T) {
	if testing.Short() {
		t.Skip("sleeps")
	}
	for _, src := range []Source{PlatformSource(), RuntimeSource()} {
		t.Run(src.Name(), func(t *testing.T) {
			timer, err := New(src)
			require.NoError(t, err)

			before := timer.Seconds()
			time.Sleep(100 * time.Millisecond)
			delta := timer.Seconds() - before

			t.Logf("100ms sleep measured as %.6fs", delta)
			require.GreaterOrEqual(t, delta, 0.095)
			require.Less(t, delta, 0.5)
		})
	}
}

func TestDefault_Singleton(t *testing.T) {
	const callers = 32
	timers := make([]*Timer, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			timer, err := Default()
			assert.NoError(t, err)
			timers[i] = timer
		}(i)
	}
	wg.Wait()

	for _, timer := range timers {
		require.Same(t, timers[0], timer)
	}
	require.Equal(t, Ready, DefaultState())
}

func TestDefault_IgnoresEnvironment(t *testing.T) {
	t.Setenv("ROOTCLOCK_SOURCE", "runtime")

	timer, err := Default()
	require.NoError(t, err)
	require.Equal(t, PlatformSource().Name(), timer.Info().Source)
}

func TestGetTime_NonDecreasing(t *testing.T) {
	first := GetTime()
	require.GreaterOrEqual(t, first, 0.0)
	second := GetTime()
	require.GreaterOrEqual(t, second, first)
	require.NotEqual(t, Uninitialized, DefaultState())
}

func TestState_String(t *testing.T) {
	require.Equal(t, "Uninitialized", Uninitialized.String())
	require.Equal(t, "Ready", Ready.String())
	require.Equal(t, "Failed", Failed.String())
	require.Equal(t, "Unknown", State(9).String())
}

func BenchmarkGetTime(b *testing.B) {
	b.ReportAllocs()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += GetTime()
	}
	_ = sink
}
