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

//go:build windows

package monotime

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	qpcProc  = kernel32.NewProc("QueryPerformanceCounter")
	qpfProc  = kernel32.NewProc("QueryPerformanceFrequency")
)

type qpcSource struct{}

// PlatformSource returns the QueryPerformanceCounter tick counter.
func PlatformSource() Source {
	return qpcSource{}
}

func (qpcSource) Name() string { return "QueryPerformanceCounter" }

func (qpcSource) Timebase() (Timebase, error) {
	if err := qpfProc.Find(); err != nil {
		return Timebase{}, err
	}
	var freq int64
	if r, _, err := qpfProc.Call(uintptr(unsafe.Pointer(&freq))); r == 0 {
		return Timebase{}, fmt.Errorf("QueryPerformanceFrequency: %w", err)
	}
	return qpcTimebase(freq)
}

func (qpcSource) Ticks() (uint64, error) {
	var count int64
	if r, _, err := qpcProc.Call(uintptr(unsafe.Pointer(&count))); r == 0 {
		return 0, fmt.Errorf("QueryPerformanceCounter: %w", err)
	}
	return uint64(count), nil
}

// qpcTimebase converts a QPC frequency in Hz into nanoseconds per tick,
// reduced so both terms fit in 32 bits.
func qpcTimebase(freq int64) (Timebase, error) {
	if freq <= 0 {
		return Timebase{}, fmt.Errorf("%w: frequency %d", ErrZeroTimebase, freq)
	}
	numer, denom := uint64(1_000_000_000), uint64(freq)
	g := gcd(numer, denom)
	numer, denom = numer/g, denom/g
	if numer > math.MaxUint32 || denom > math.MaxUint32 {
		return Timebase{}, fmt.Errorf("monotime: QPC frequency %d does not fit a 32-bit timebase", freq)
	}
	return Timebase{Numer: uint32(numer), Denom: uint32(denom)}, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
