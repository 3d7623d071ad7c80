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

// Sqrt returns the square root of x by Newton's method.
//
// Sqrt(±0) = ±0, Sqrt(+Inf) = +Inf, and Sqrt(x) = NaN for x < 0 or NaN.
// When Tolerance cannot be met the best estimate is returned.
func Sqrt(x float64) float64 {
	return SqrtResult(x).Value
}

// SqrtResult is Sqrt with the iteration count and the reason, if any, that
// the tolerance was not met.
func SqrtResult(x float64) Result {
	switch {
	case math.IsNaN(x) || x < 0:
		return domainError("sqrt", x)
	case x == 0 || math.IsInf(x, 1):
		return Result{Value: x}
	}
	return iterate(InitialGuess, x, improveSqrt, sqrtGoodEnough)
}

func sqrtGoodEnough(guess, x float64) bool {
	return math.Abs(square(guess)-x) < Tolerance
}

func improveSqrt(guess, x float64) float64 {
	return average(guess, x/guess)
}

func average(a, b float64) float64 {
	return (a + b) / 2
}

func square(x float64) float64 {
	return x * x
}
