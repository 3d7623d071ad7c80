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

// Package newton provides square and cube roots computed by Newton's method.
//
// # Root Functions
//
// The package provides two roots over float64, each in a flattened and a
// strict form:
//   - Sqrt(x float64) float64 - square root, NaN outside the domain
//   - Cbrt(x float64) float64 - cube root, defined for every finite x
//   - SqrtResult(x float64) Result - square root with iteration count and error
//   - CbrtResult(x float64) Result - cube root with iteration count and error
//
// # Algorithm
//
// Both roots start from a guess of 1.0 and refine it with a fixed update rule
// until the guess is good enough:
//  1. Square root: g' = (g + x/g) / 2, stop when |g² - x| < Tolerance
//  2. Cube root: g' = (x/g² + 2g) / 3, stop when |g³ - x| < Tolerance
//  3. Stop early with ErrNotConverged after MaxIterations refinements, or when
//     a refinement no longer moves the guess
//
// Tolerance is absolute, so the relative precision of the result degrades for
// very small inputs (Sqrt(1e-10) is about 0.03) and the tolerance becomes
// unreachable for very large ones (Sqrt(1e300) reports ErrNotConverged with a
// best estimate that is correct to float64 precision).
//
// # Example Usage
//
//	import "github.com/ajroetker/rootclock/newton"
//
//	newton.Sqrt(2)   // 1.4142156862745097
//	newton.Cbrt(27)  // within 0.001 of 3
//
//	r := newton.SqrtResult(-1)
//	errors.Is(r.Err, newton.ErrDomain) // true
//
// All functions are pure and safe for concurrent use.
package newton
