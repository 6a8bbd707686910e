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

// Package hwy provides the portable lane layer the Newton kernels are
// written against.
//
// A Vec holds MaxLanes[T]() values of one floating-point type. The number of
// lanes follows the dispatch level detected at startup (16 bytes for
// scalar/SSE2/NEON, 32 for AVX2, 64 for AVX-512), so the same kernel code
// processes more values per step on wider hardware.
//
// Basic usage:
//
//	import "github.com/ajroetker/newtonbench/hwy"
//
//	a := hwy.Zero[float64]()
//	b := hwy.Set(0.5)
//	hwy.LoadTo(a, values)
//	hwy.MulTo(a, a, b)
//	hwy.Store(a, out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats
}

// Vec is a portable vector handle.
//
// Vec instances should not be created directly; use Set or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}
