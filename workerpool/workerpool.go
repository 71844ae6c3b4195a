// Copyright 2025 The go-densekern Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent fork-join worker pool for the
// parallel regions of the dense kernels. A Pool is created once and reused
// across many regions, so the per-k relax loop of the shortest-path kernel
// does not pay goroutine spawn and channel allocation costs n times per run.
//
// Every Parallel* call is a complete fork-join region: it blocks the caller
// until all workers have finished their share. Within a region each worker
// owns a disjoint index range, so no locking is needed as long as callers
// partition their output by index.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for k := 0; k < n; k++ { // sequential outer loop
//	    pool.ParallelForDynamic(n, 16, func(start, end int) {
//	        relaxRows(start, end, k)
//	    }) // hard barrier between k and k+1
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a fork-join region.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent workers. If numWorkers <= 0,
// GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. In-flight regions complete; calling Close more
// than once is safe. A closed pool degrades to sequential execution rather
// than failing, so kernels keep working during teardown.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor runs fn over [0, n) as one fork-join region with a static
// partition: each worker gets one contiguous chunk. Best for regions where
// every index costs the same, like the elementwise copy phase.
//
// fn receives a half-open range [start, end) it exclusively owns.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= end {
			continue
		}
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForDynamic runs fn over [0, n) as one fork-join region with
// dynamic chunk assignment: workers repeatedly grab the next batch of
// batchSize indices from a shared atomic counter. The scheduling overhead
// buys load balance when per-index cost varies, e.g. from cache effects in
// the relax loop.
//
// fn receives a half-open range [start, end) it exclusively owns.
func (p *Pool) ParallelForDynamic(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					batch := int(next.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
