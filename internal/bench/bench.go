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

// Package bench drives the Newton square root workload and writes one result
// per line.
package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ajroetker/newtonbench/hwy"
	"github.com/ajroetker/newtonbench/hwy/contrib/newton"
	"github.com/ajroetker/newtonbench/hwy/contrib/workerpool"
)

// Run evaluates cfg.Repeats approximations of √cfg.Target and writes each
// result to w on its own line, in repeat order. Values use the shortest
// decimal form that round-trips at the configured precision, which is also
// what fmt.Println prints.
//
// The output is identical for every Mode and worker count.
func Run(w io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	// Canonicalize spellings such as "BATCH" or "f32".
	cfg.Mode, _ = ParseMode(string(cfg.Mode))
	cfg.Precision, _ = ParsePrecision(string(cfg.Precision))

	bw := bufio.NewWriter(w)

	var err error
	switch cfg.Precision {
	case PrecisionFloat32:
		err = run[float32](bw, cfg, 32)
	default:
		err = run[float64](bw, cfg, 64)
	}
	if err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func run[T hwy.Floats](w *bufio.Writer, cfg Config, bitSize int) error {
	n := T(cfg.Target)
	var line []byte

	if cfg.Mode == ModeBatch {
		for i, v := range evaluateBatch(n, cfg) {
			line = appendResult(line[:0], float64(v), bitSize)
			if _, err := w.Write(line); err != nil {
				return fmt.Errorf("write result %d: %w", i, err)
			}
		}
		return nil
	}

	for i := range cfg.Repeats {
		v := newton.Approximate(n, cfg.Iterations)
		line = appendResult(line[:0], float64(v), bitSize)
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("write result %d: %w", i, err)
		}
	}
	return nil
}

// evaluateBatch returns cfg.Repeats approximations of √n.
func evaluateBatch[T hwy.Floats](n T, cfg Config) []T {
	src := make([]T, cfg.Repeats)
	for i := range src {
		src[i] = n
	}
	dst := make([]T, len(src))

	if cfg.Workers == 1 {
		newton.ApproximateBatch(dst, src, cfg.Iterations)
		return dst
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	pool.ParallelFor(len(src), func(start, end int) {
		newton.ApproximateBatch(dst[start:end], src[start:end], cfg.Iterations)
	})
	return dst
}

func appendResult(dst []byte, v float64, bitSize int) []byte {
	dst = strconv.AppendFloat(dst, v, 'g', -1, bitSize)
	return append(dst, '\n')
}
