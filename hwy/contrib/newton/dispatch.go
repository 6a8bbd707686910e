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

import "github.com/ajroetker/newtonbench/hwy"

// Dispatch function variables.
// These are initialized in init() according to the detected dispatch level.
var (
	// ApproximateFloat32 approximates √n in float32 with iters steps.
	ApproximateFloat32 func(n float32, iters int) float32

	// ApproximateFloat64 approximates √n in float64 with iters steps.
	ApproximateFloat64 func(n float64, iters int) float64

	// ApproximateBatchFloat32 approximates √src[i] into dst[i].
	ApproximateBatchFloat32 func(dst, src []float32, iters int)

	// ApproximateBatchFloat64 approximates √src[i] into dst[i].
	ApproximateBatchFloat64 func(dst, src []float64, iters int)
)

func init() {
	ApproximateFloat32 = BaseApproximate[float32]
	ApproximateFloat64 = BaseApproximate[float64]

	if hwy.CurrentLevel() == hwy.DispatchScalar {
		ApproximateBatchFloat32 = scalarApproximateBatch[float32]
		ApproximateBatchFloat64 = scalarApproximateBatch[float64]
		return
	}
	ApproximateBatchFloat32 = BaseApproximateBatch[float32]
	ApproximateBatchFloat64 = BaseApproximateBatch[float64]
}

// Approximate is the generic API that dispatches to the appropriate implementation.
func Approximate[T hwy.Floats](n T, iters int) T {
	switch v := any(n).(type) {
	case float32:
		return any(ApproximateFloat32(v, iters)).(T)
	case float64:
		return any(ApproximateFloat64(v, iters)).(T)
	}
	return BaseApproximate(n, iters)
}

// ApproximateBatch is the generic API that dispatches to the appropriate implementation.
func ApproximateBatch[T hwy.Floats](dst, src []T, iters int) {
	switch d := any(dst).(type) {
	case []float32:
		ApproximateBatchFloat32(d, any(src).([]float32), iters)
	case []float64:
		ApproximateBatchFloat64(d, any(src).([]float64), iters)
	default:
		BaseApproximateBatch(dst, src, iters)
	}
}
