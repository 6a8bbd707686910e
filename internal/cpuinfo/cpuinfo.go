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

// Package cpuinfo reports the CPU features and dispatch level the Newton
// kernels run with.
package cpuinfo

import (
	"bytes"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/newtonbench/hwy"
)

// Report writes a human-readable summary of the platform, the dispatch level
// and the lane counts of the batch kernel to w.
func Report(w io.Writer) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(&buf, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(&buf, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Dispatch level: %s\n", hwy.CurrentLevel().Title())
	fmt.Fprintf(&buf, "Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(&buf, "Dispatch name: %s\n", hwy.CurrentName())
	fmt.Fprintf(&buf, "HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
	fmt.Fprintf(&buf, "Lanes: float32=%d float64=%d\n", hwy.MaxLanes[float32](), hwy.MaxLanes[float64]())

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(&buf)
		writeARM64Features(&buf)
	case "amd64":
		fmt.Fprintln(&buf)
		writeAMD64Features(&buf)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write cpu report: %w", err)
	}
	return nil
}

func writeARM64Features(buf *bytes.Buffer) {
	fmt.Fprintln(buf, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(buf, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(buf, "  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(buf, "  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Fprintf(buf, "  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(buf, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(buf, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func writeAMD64Features(buf *bytes.Buffer) {
	fmt.Fprintln(buf, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(buf, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(buf, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(buf, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(buf, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(buf, "  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(buf, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(buf, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}
