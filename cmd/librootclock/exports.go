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

import "C"

import (
	"github.com/ajroetker/rootclock/monotime"
	"github.com/ajroetker/rootclock/newton"
)

//export my_sqrt
func my_sqrt(x C.double) C.double {
	return C.double(newton.Sqrt(float64(x)))
}

//export my_cbrt
func my_cbrt(x C.double) C.double {
	return C.double(newton.Cbrt(float64(x)))
}

//export get_time
func get_time() C.double {
	return C.double(monotime.GetTime())
}

//export my_sqrt_checked
func my_sqrt_checked(x C.double, out *C.double) C.int {
	if out == nil {
		return C.int(statusNullPointer)
	}
	r := newton.SqrtResult(float64(x))
	*out = C.double(r.Value)
	return C.int(rootStatus(r))
}

//export my_cbrt_checked
func my_cbrt_checked(x C.double, out *C.double) C.int {
	if out == nil {
		return C.int(statusNullPointer)
	}
	r := newton.CbrtResult(float64(x))
	*out = C.double(r.Value)
	return C.int(rootStatus(r))
}

//export get_time_checked
func get_time_checked(out *C.double) C.int {
	if out == nil {
		return C.int(statusNullPointer)
	}
	s, st := elapsed()
	*out = C.double(s)
	return C.int(st)
}
