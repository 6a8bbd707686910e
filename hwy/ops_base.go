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

package hwy

// This file provides the pure Go implementations of the lane operations.
// Every operation is element-wise and rounds each lane exactly as the
// equivalent scalar expression would, so kernels built on Vec produce
// bit-identical results to their scalar counterparts.

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
// Kernels use it to allocate scratch vectors for the To operations.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// The operations below write into an existing vector instead of returning a
// new one, so a kernel that allocates its vectors up front runs without
// further allocation. dst may alias a or b. Only the first
// min(dst, a, b) lanes are written.

// LoadTo copies up to dst.NumLanes() elements of src into dst.
func LoadTo[T Lanes](dst Vec[T], src []T) {
	copy(dst.data, src)
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data)
}

// Fill sets every lane of dst to value.
func Fill[T Lanes](dst Vec[T], value T) {
	for i := range dst.data {
		dst.data[i] = value
	}
}

// AddTo performs element-wise addition, dst = a + b.
func AddTo[T Lanes](dst, a, b Vec[T]) {
	n := min(len(dst.data), len(a.data), len(b.data))
	d, x, y := dst.data[:n], a.data[:n], b.data[:n]
	for i := range d {
		d[i] = x[i] + y[i]
	}
}

// MulTo performs element-wise multiplication, dst = a * b.
func MulTo[T Lanes](dst, a, b Vec[T]) {
	n := min(len(dst.data), len(a.data), len(b.data))
	d, x, y := dst.data[:n], a.data[:n], b.data[:n]
	for i := range d {
		d[i] = x[i] * y[i]
	}
}

// DivTo performs element-wise division, dst = a / b.
// Division by zero follows IEEE 754 and yields ±Inf or NaN.
func DivTo[T Floats](dst, a, b Vec[T]) {
	n := min(len(dst.data), len(a.data), len(b.data))
	d, x, y := dst.data[:n], a.data[:n], b.data[:n]
	for i := range d {
		d[i] = x[i] / y[i]
	}
}
