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

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Tolerance is the absolute bound on |g^n - x| at which a guess is accepted.
	Tolerance = 0.001

	// InitialGuess is the starting point of every iteration.
	InitialGuess = 1.0

	// MaxIterations caps the number of refinements per call. It is large enough
	// for Sqrt(1e300) and Cbrt(1e300) to walk down from InitialGuess.
	MaxIterations = 2048
)

var (
	// ErrDomain is returned when the input has no real root of the requested kind.
	ErrDomain = errors.New("newton: input outside domain")

	// ErrNotConverged is returned when Tolerance could not be met. The Result
	// still carries the best estimate found.
	ErrNotConverged = errors.New("newton: did not converge")
)

// Result is the outcome of a single root computation.
type Result struct {
	// Value is the root estimate, or NaN when Err wraps ErrDomain.
	Value float64
	// Iterations is the number of refinements applied to InitialGuess.
	Iterations int
	// Err is nil on convergence.
	Err error
}

// Converged reports whether Value met Tolerance.
func (r Result) Converged() bool {
	return r.Err == nil
}

// String returns a human-readable summary of the result.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%g after %d iterations: %v", r.Value, r.Iterations, r.Err)
	}
	return fmt.Sprintf("%g after %d iterations", r.Value, r.Iterations)
}

// iterate refines guess with improve until goodEnough accepts it.
//
// The loop stops with ErrNotConverged when MaxIterations is reached or when a
// refinement leaves the guess unchanged (or non-finite), which happens once
// float64 spacing around the root exceeds Tolerance.
func iterate(guess, x float64, improve func(guess, x float64) float64, goodEnough func(guess, x float64) bool) Result {
	for i := 0; i < MaxIterations; i++ {
		if goodEnough(guess, x) {
			return Result{Value: guess, Iterations: i}
		}
		next := improve(guess, x)
		if next == guess || math.IsNaN(next) || math.IsInf(next, 0) {
			return Result{
				Value:      guess,
				Iterations: i,
				Err:        fmt.Errorf("%w: stalled at %g for x=%g", ErrNotConverged, guess, x),
			}
		}
		guess = next
	}
	if goodEnough(guess, x) {
		return Result{Value: guess, Iterations: MaxIterations}
	}
	return Result{
		Value:      guess,
		Iterations: MaxIterations,
		Err:        fmt.Errorf("%w: %d iterations for x=%g", ErrNotConverged, MaxIterations, x),
	}
}

func domainError(op string, x float64) Result {
	return Result{Value: math.NaN(), Err: fmt.Errorf("%w: %s(%g)", ErrDomain, op, x)}
}
