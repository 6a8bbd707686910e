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

// Command newtonbench runs the Newton-Raphson square root microbenchmark.
//
// Usage:
//
//	newtonbench                               # √2, 10000 steps, 10000 lines
//	newtonbench -n 3 -iters 50 -repeat 4      # smaller workload
//	newtonbench -mode batch -workers 0        # lane-parallel, all CPUs
//	newtonbench -cpuinfo                      # dispatch diagnostics
//
// Each result is printed on its own line in repeat order. The output does
// not depend on -mode or -workers. Set HWY_NO_SIMD=1 to force the scalar
// dispatch level.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ajroetker/newtonbench/hwy"
	"github.com/ajroetker/newtonbench/hwy/contrib/newton"
	"github.com/ajroetker/newtonbench/internal/bench"
	"github.com/ajroetker/newtonbench/internal/cpuinfo"
)

// options holds the parsed command-line flags.
type options struct {
	target     float64
	iterations int
	repeats    int
	mode       string
	precision  string
	workers    int
	verbose    bool
	showCPU    bool
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet("newtonbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: newtonbench [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.Float64Var(&opts.target, "n", newton.DefaultTarget, "Value whose square root is approximated")
	fs.IntVar(&opts.iterations, "iters", newton.DefaultIterations, "Newton steps per approximation")
	fs.IntVar(&opts.repeats, "repeat", newton.DefaultRepeats, "Number of approximations (output lines)")
	fs.StringVar(&opts.mode, "mode", string(bench.ModeLoop), "Evaluation mode: loop or batch")
	fs.StringVar(&opts.precision, "precision", string(bench.PrecisionFloat64), "Floating-point type: float64 or float32")
	fs.IntVar(&opts.workers, "workers", 1, "Goroutines for -mode batch (0 = GOMAXPROCS)")
	fs.BoolVar(&opts.verbose, "v", false, "Print dispatch level and configuration to stderr")
	fs.BoolVar(&opts.showCPU, "cpuinfo", false, "Print CPU features and dispatch level, then exit")
	return fs, opts
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns the exit
// status: 0 on success, 2 for command-line errors, 1 for everything else.
func run(args []string, stdout, stderr io.Writer) int {
	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments %q\n\n", fs.Args())
		fs.Usage()
		return 2
	}

	if opts.showCPU {
		if err := cpuinfo.Report(stdout); err != nil {
			fmt.Fprintf(stderr, "newtonbench: %v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := opts.config()
	if err != nil {
		fmt.Fprintf(stderr, "newtonbench: %v\n", err)
		return 1
	}

	if opts.verbose {
		fmt.Fprintf(stderr, "newtonbench: dispatch=%s width=%d mode=%s precision=%s n=%v iters=%d repeat=%d workers=%d\n",
			hwy.CurrentLevel().Title(), hwy.CurrentWidth(), cfg.Mode, cfg.Precision,
			cfg.Target, cfg.Iterations, cfg.Repeats, cfg.Workers)
	}

	if err := bench.Run(stdout, cfg); err != nil {
		fmt.Fprintf(stderr, "newtonbench: %v\n", err)
		return 1
	}
	return 0
}

// config builds a validated bench.Config from the parsed flags.
func (o *options) config() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	cfg.Target = o.target
	cfg.Iterations = o.iterations
	cfg.Repeats = o.repeats
	cfg.Workers = o.workers

	m, err := bench.ParseMode(o.mode)
	if err != nil {
		return cfg, fmt.Errorf("-mode: %w", err)
	}
	cfg.Mode = m

	p, err := bench.ParsePrecision(o.precision)
	if err != nil {
		return cfg, fmt.Errorf("-precision: %w", err)
	}
	cfg.Precision = p

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
