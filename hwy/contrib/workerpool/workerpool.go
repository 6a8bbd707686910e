// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting a batch
// of independent approximations across goroutines.
//
// A Pool is created once per run and reused for every ParallelFor call, so
// the goroutines are spawned a single time regardless of how many batches
// are evaluated.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(out), func(start, end int) {
//	    newton.ApproximateBatch(out[start:end], in[start:end], iters)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	chunks     chan chunk
	closeOnce  sync.Once
	closed     atomic.Bool
}

// chunk is one contiguous range of a ParallelFor call.
type chunk struct {
	start, end int
	fn         func(start, end int)
	done       *sync.WaitGroup
}

// New creates a worker pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		chunks: make(chan chunk, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for c := range p.chunks {
		c.fn(c.start, c.end)
		c.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Calling Close multiple times is safe.
// Close must not be called concurrently with ParallelFor.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.chunks)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn(start, end) for each on the pool. It blocks until every range is
// done. Ranges are disjoint and cover [0, n) exactly once.
//
// After Close, or when a single range suffices, fn runs on the caller's
// goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		wg.Add(1)
		p.chunks <- chunk{
			start: start,
			end:   min(start+chunkSize, n),
			fn:    fn,
			done:  &wg,
		}
	}

	wg.Wait()
}
