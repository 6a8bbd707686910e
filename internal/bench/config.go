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

package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/newtonbench/hwy/contrib/newton"
)

// Mode selects how the repeats are evaluated.
type Mode string

const (
	// ModeLoop calls the scalar approximator once per repeat, in order.
	ModeLoop Mode = "loop"

	// ModeBatch evaluates all repeats with the lane-parallel batch kernel,
	// optionally split across a worker pool, then writes them in order.
	ModeBatch Mode = "batch"
)

// Precision selects the floating-point type of the computation.
type Precision string

const (
	PrecisionFloat64 Precision = "float64"
	PrecisionFloat32 Precision = "float32"
)

var (
	ErrNegativeCount    = errors.New("must not be negative")
	ErrUnknownMode      = errors.New("unknown mode")
	ErrUnknownPrecision = errors.New("unknown precision")
)

// Config describes one benchmark run.
type Config struct {
	// Target is the value whose square root is approximated.
	Target float64

	// Iterations is the number of Newton steps per approximation.
	Iterations int

	// Repeats is the number of approximations, one output line each.
	Repeats int

	// Workers is the number of goroutines used by ModeBatch.
	// 0 means runtime.GOMAXPROCS(0). Ignored by ModeLoop.
	Workers int

	Mode      Mode
	Precision Precision
}

// DefaultConfig returns the classic workload: √2 with 10000 steps,
// 10000 times, sequentially in float64.
func DefaultConfig() Config {
	return Config{
		Target:     newton.DefaultTarget,
		Iterations: newton.DefaultIterations,
		Repeats:    newton.DefaultRepeats,
		Workers:    1,
		Mode:       ModeLoop,
		Precision:  PrecisionFloat64,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w", c.Iterations, ErrNegativeCount)
	}
	if c.Repeats < 0 {
		return fmt.Errorf("repeats %d: %w", c.Repeats, ErrNegativeCount)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrNegativeCount)
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if _, err := ParsePrecision(string(c.Precision)); err != nil {
		return err
	}
	return nil
}

// ParseMode converts a flag value to a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeLoop, ModeBatch:
		return m, nil
	}
	return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownMode, s, ModeLoop, ModeBatch)
}

// ParsePrecision converts a flag value to a Precision. Matching is
// case-insensitive; "f64"/"f32" are accepted as short forms.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(s) {
	case "float64", "f64":
		return PrecisionFloat64, nil
	case "float32", "f32":
		return PrecisionFloat32, nil
	}
	return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownPrecision, s, PrecisionFloat64, PrecisionFloat32)
}
