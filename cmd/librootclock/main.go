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

// Command librootclock is the C entry point of rootclock. Build it as a
// shared or static library:
//
//	go build -buildmode=c-shared -o librootclock.so ./cmd/librootclock
//	go build -buildmode=c-archive -o librootclock.a ./cmd/librootclock
//
// The generated header declares:
//
//	double my_sqrt(double x);
//	double my_cbrt(double x);
//	double get_time(void);
//	int my_sqrt_checked(double x, double* out);
//	int my_cbrt_checked(double x, double* out);
//	int get_time_checked(double* out);
//
// get_time returns 0.0 when the process timer could not be initialised, the
// same value as a genuine zero reading. The *_checked variants return one of
// the status codes below and write the value through out:
//
//	0 ok
//	1 input outside the function's domain (out is NaN)
//	2 tolerance not met (out holds the best estimate)
//	3 timer unavailable
//	4 out is NULL
package main

import (
	"errors"

	"github.com/ajroetker/rootclock/monotime"
	"github.com/ajroetker/rootclock/newton"
)

type status int

const (
	statusOK status = iota
	statusDomain
	statusNotConverged
	statusTimerUnavailable
	statusNullPointer
)

func rootStatus(r newton.Result) status {
	switch {
	case r.Err == nil:
		return statusOK
	case errors.Is(r.Err, newton.ErrDomain):
		return statusDomain
	default:
		return statusNotConverged
	}
}

func elapsed() (float64, status) {
	t, err := monotime.Default()
	if err != nil {
		return 0, statusTimerUnavailable
	}
	s, err := t.Elapsed()
	if err != nil {
		return 0, statusTimerUnavailable
	}
	return s, statusOK
}

func main() {}
