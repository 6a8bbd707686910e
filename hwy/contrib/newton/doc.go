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

// Package newton provides fixed-count Newton-Raphson square root kernels.
//
// Every kernel starts from a = 1 and applies
//
//	a = 0.5 * (a + n / a)
//
// exactly iters times. There is no convergence test and no tolerance: the
// iteration count is the workload. For n = 2 the value reaches its float64
// fixed point, one ulp below √2, after five steps and stays there, so the
// remaining steps are pure floating-point throughput.
//
// # Functions
//
//   - Approximate(n, iters) - one scalar approximation
//   - ApproximateBatch(dst, src, iters) - one approximation per element,
//     computed hwy.MaxLanes[T]() elements at a time
//   - Iterates(n, iters) - every intermediate value, for inspection
//
// Batch results are bit-identical to Approximate: each lane runs the same
// sequence of operations with the same rounding. The batch kernels do not
// allocate once their pooled scratch vectors exist.
//
// Division is not guarded. n = 0 or a zero intermediate produces the IEEE
// result (Inf or NaN) rather than an error.
//
// # Example Usage
//
//	import "github.com/ajroetker/newtonbench/hwy/contrib/newton"
//
//	root := newton.Approximate(2.0, newton.DefaultIterations)
//
//	out := make([]float64, len(targets))
//	newton.ApproximateBatch(out, targets, 100)
package newton
