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
	"sync"

	"github.com/ajroetker/newtonbench/hwy"
)

// BaseApproximate approximates √n with exactly iters Newton-Raphson steps
// starting from InitialGuess.
//
// iters <= 0 performs no step and returns InitialGuess.
//
// Example:
//
//	BaseApproximate(2.0, 1)     // 1.5
//	BaseApproximate(2.0, 10000) // 1.414213562373095
func BaseApproximate[T hwy.Floats](n T, iters int) T {
	a := T(InitialGuess)
	for range iters {
		a = half * (a + n/a)
	}
	return a
}

// Iterates returns the value after each of the iters steps, so
// Iterates(n, k)[k-1] == BaseApproximate(n, k).
//
// Returns an empty slice if iters <= 0.
func Iterates[T hwy.Floats](n T, iters int) []T {
	out := make([]T, max(iters, 0))
	a := T(InitialGuess)
	for i := range out {
		a = half * (a + n/a)
		out[i] = a
	}
	return out
}

// BaseApproximateBatch sets dst[i] = BaseApproximate(src[i], iters) for
// every i < min(len(dst), len(src)).
//
// Full vectors run the update on hwy.MaxLanes[T]() lanes at once; the
// remainder falls back to the scalar kernel. Lanes are independent and
// round exactly like the scalar expression. The lane vectors come from a
// pool, so repeated calls do not allocate.
func BaseApproximateBatch[T hwy.Floats](dst, src []T, iters int) {
	size := min(len(dst), len(src))
	if size == 0 {
		return
	}
	s := getScratch[T]()
	defer putScratch(s)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			hwy.LoadTo(s.n, src[offset:])
			hwy.Fill(s.a, T(InitialGuess))
			for range iters {
				hwy.DivTo(s.tmp, s.n, s.a)
				hwy.AddTo(s.tmp, s.a, s.tmp)
				hwy.MulTo(s.a, s.half, s.tmp)
			}
			hwy.Store(s.a, dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = BaseApproximate(src[i], iters)
			}
		},
	)
}

// batchScratch holds the lane vectors of one BaseApproximateBatch call.
type batchScratch[T hwy.Floats] struct {
	half, n, a, tmp hwy.Vec[T]
}

func newScratch[T hwy.Floats]() *batchScratch[T] {
	return &batchScratch[T]{
		half: hwy.Set(T(half)),
		n:    hwy.Zero[T](),
		a:    hwy.Zero[T](),
		tmp:  hwy.Zero[T](),
	}
}

// Pools for batch scratch vectors. The lane count is fixed once the
// dispatch level is detected, so pooled vectors never need resizing.
var (
	scratchPoolF32 = sync.Pool{
		New: func() any { return newScratch[float32]() },
	}
	scratchPoolF64 = sync.Pool{
		New: func() any { return newScratch[float64]() },
	}
)

// getScratch returns scratch vectors for T, pooled for float32 and float64.
func getScratch[T hwy.Floats]() *batchScratch[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return scratchPoolF32.Get().(*batchScratch[T])
	case float64:
		return scratchPoolF64.Get().(*batchScratch[T])
	default:
		return newScratch[T]()
	}
}

func putScratch[T hwy.Floats](s *batchScratch[T]) {
	switch p := any(s).(type) {
	case *batchScratch[float32]:
		scratchPoolF32.Put(p)
	case *batchScratch[float64]:
		scratchPoolF64.Put(p)
	}
}

// scalarApproximateBatch is the batch kernel for the scalar dispatch level.
func scalarApproximateBatch[T hwy.Floats](dst, src []T, iters int) {
	size := min(len(dst), len(src))
	for i := range size {
		dst[i] = BaseApproximate(src[i], iters)
	}
}
