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

import (
	"math"
	"testing"
)

func TestLoadTo(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	v := Zero[float32]()
	LoadTo(v, data)

	if v.NumLanes() != MaxLanes[float32]() {
		t.Errorf("LoadTo: got %d lanes, want %d", v.NumLanes(), MaxLanes[float32]())
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("LoadTo: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadToShort(t *testing.T) {
	v := Set[float64](9)
	LoadTo(v, []float64{7})
	if v.data[0] != 7 {
		t.Errorf("LoadTo: lane 0: got %v, want 7", v.data[0])
	}
	for i := 1; i < v.NumLanes(); i++ {
		if v.data[i] != 9 {
			t.Errorf("LoadTo: lane %d: got %v, want 9 (untouched)", i, v.data[i])
		}
	}
}

func TestStore(t *testing.T) {
	v := Set[float64](3.5)
	dst := make([]float64, v.NumLanes()+2)
	Store(v, dst)

	for i := range dst {
		want := 3.5
		if i >= v.NumLanes() {
			want = 0
		}
		if dst[i] != want {
			t.Errorf("Store: dst[%d] = %v, want %v", i, dst[i], want)
		}
	}

	// Short destination must not panic.
	short := make([]float64, 1)
	Store(v, short)
	if short[0] != 3.5 {
		t.Errorf("Store short: got %v, want 3.5", short[0])
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[float64]()

	if v.NumLanes() != MaxLanes[float64]() {
		t.Errorf("Zero: got %d lanes, want %d", v.NumLanes(), MaxLanes[float64]())
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestFill(t *testing.T) {
	v := Zero[float32]()
	Fill(v, 1.5)
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 1.5 {
			t.Errorf("Fill: lane %d: got %v, want 1.5", i, v.data[i])
		}
	}
}

func TestAddTo(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](5.0)
	result := Zero[float32]()
	AddTo(result, a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 15.0 {
			t.Errorf("AddTo: lane %d: got %v, want 15.0", i, result.data[i])
		}
	}
	if a.data[0] != 10.0 || b.data[0] != 5.0 {
		t.Errorf("AddTo modified its operands: a=%v b=%v", a.data[0], b.data[0])
	}
}

func TestMulTo(t *testing.T) {
	a := Set[float64](4.0)
	b := Set[float64](0.5)
	result := Zero[float64]()
	MulTo(result, a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 2.0 {
			t.Errorf("MulTo: lane %d: got %v, want 2.0", i, result.data[i])
		}
	}
}

func TestDivTo(t *testing.T) {
	a := Set[float64](2.0)
	b := Set[float64](3.0)
	result := Zero[float64]()
	DivTo(result, a, b)

	want := 2.0 / 3.0
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != want {
			t.Errorf("DivTo: lane %d: got %v, want %v", i, result.data[i], want)
		}
	}
}

func TestDivToByZero(t *testing.T) {
	result := Zero[float64]()
	DivTo(result, Set[float64](1.0), Zero[float64]())
	for i := 0; i < result.NumLanes(); i++ {
		if !math.IsInf(result.data[i], 1) {
			t.Errorf("DivTo by zero: lane %d: got %v, want +Inf", i, result.data[i])
		}
	}

	DivTo(result, Zero[float64](), Zero[float64]())
	for i := 0; i < result.NumLanes(); i++ {
		if !math.IsNaN(result.data[i]) {
			t.Errorf("DivTo 0/0: lane %d: got %v, want NaN", i, result.data[i])
		}
	}
}

// The Newton update writes its result over an operand on every step.
func TestOpsAliasing(t *testing.T) {
	a := Set[float64](1.0)
	n := Set[float64](2.0)
	half := Set[float64](0.5)
	tmp := Zero[float64]()

	DivTo(tmp, n, a)    // 2
	AddTo(tmp, a, tmp)  // 3
	MulTo(a, half, tmp) // 1.5
	AddTo(a, a, a)      // 3
	for i := 0; i < a.NumLanes(); i++ {
		if a.data[i] != 3 {
			t.Errorf("aliased ops: lane %d: got %v, want 3", i, a.data[i])
		}
	}
}

func TestOpsAllocs(t *testing.T) {
	a := Set[float64](1.0)
	b := Set[float64](2.0)
	dst := Zero[float64]()
	src := make([]float64, dst.NumLanes())
	out := make([]float64, dst.NumLanes())

	allocs := testing.AllocsPerRun(100, func() {
		LoadTo(dst, src)
		Fill(dst, 1)
		AddTo(dst, a, b)
		MulTo(dst, dst, b)
		DivTo(dst, dst, a)
		Store(dst, out)
	})
	if allocs != 0 {
		t.Errorf("in-place ops: %v allocs per run, want 0", allocs)
	}
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[float64]()
	sizes := []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2}

	for _, size := range sizes {
		seen := make([]int, size)
		fullCalls, tailCalls := 0, 0
		ProcessWithTail[float64](size,
			func(offset int) {
				fullCalls++
				for i := offset; i < offset+lanes; i++ {
					seen[i]++
				}
			},
			func(offset, count int) {
				tailCalls++
				for i := offset; i < offset+count; i++ {
					seen[i]++
				}
			},
		)

		if fullCalls != size/lanes {
			t.Errorf("size %d: %d full calls, want %d", size, fullCalls, size/lanes)
		}
		wantTail := 0
		if size%lanes != 0 {
			wantTail = 1
		}
		if tailCalls != wantTail {
			t.Errorf("size %d: %d tail calls, want %d", size, tailCalls, wantTail)
		}
		for i, c := range seen {
			if c != 1 {
				t.Errorf("size %d: index %d visited %d times", size, i, c)
			}
		}
	}
}
