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

package newton

import "math"

// Cbrt returns the cube root of x by Newton's method.
//
// Negative inputs have negative roots. Cbrt(±0) = ±0, Cbrt(±Inf) = ±Inf and
// Cbrt(NaN) = NaN. When Tolerance cannot be met the best estimate is returned.
func Cbrt(x float64) float64 {
	return CbrtResult(x).Value
}

// CbrtResult is Cbrt with the iteration count and the reason, if any, that
// the tolerance was not met.
func CbrtResult(x float64) Result {
	switch {
	case math.IsNaN(x):
		return domainError("cbrt", x)
	case x == 0 || math.IsInf(x, 0):
		return Result{Value: x}
	}
	return iterate(InitialGuess, x, improveCbrt, cbrtGoodEnough)
}

func cbrtGoodEnough(guess, x float64) bool {
	return math.Abs(cube(guess)-x) < Tolerance
}

// improveCbrt applies g' = (x/g² + 2g) / 3.
//
// A step that lands exactly on zero (x = -2g³, e.g. x = -2 from the initial
// guess) has no successor, so the iteration restarts from x itself.
func improveCbrt(guess, x float64) float64 {
	next := (x/square(guess) + 2*guess) / 3
	if next == 0 && x != 0 {
		return x
	}
	return next
}

func cube(x float64) float64 {
	return x * x * x
}
