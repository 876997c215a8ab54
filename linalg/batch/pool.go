// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package batch

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of long-lived goroutines that the batch operations
// spread their work across. Share one pool per process; a nil *Pool is valid
// and runs everything on the calling goroutine.
type Pool struct {
	size    int
	jobs    chan func()
	stop    sync.Once
	stopped atomic.Bool
}

// New starts a pool with size goroutines, or GOMAXPROCS of them when
// size <= 0.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	p := &Pool{size: size, jobs: make(chan func(), 2*size)}
	for range size {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	for job := range p.jobs {
		job()
	}
}

// NumWorkers returns the pool size, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.size
}

// Close lets the goroutines exit after their current job. ParallelFor on a
// closed pool runs sequentially. Calling Close more than once is harmless.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.stop.Do(func() {
		p.stopped.Store(true)
		close(p.jobs)
	})
}

// sequential reports whether a loop of n items in chunks of grain should
// skip the workers.
func (p *Pool) sequential(n, grain int) bool {
	return p == nil || p.stopped.Load() || p.size == 1 || n <= grain
}

// ParallelFor splits [0, n) into chunks of at most grain indices and calls fn
// once per chunk, returning after every call has finished. Chunks are claimed
// from a shared counter so a slow chunk does not hold up the rest. When the
// pool is nil or closed, or n fits in one chunk, fn(0, n) runs on the calling
// goroutine. A grain <= 0 means 1.
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)
	if p.sequential(n, grain) {
		fn(0, n)
		return
	}

	chunks := (n + grain - 1) / grain
	helpers := min(p.size, chunks)

	var claimed atomic.Int64
	drain := func() {
		for {
			c := int(claimed.Add(1) - 1)
			if c >= chunks {
				return
			}
			start := c * grain
			fn(start, min(start+grain, n))
		}
	}

	var done sync.WaitGroup
	done.Add(helpers)
	for range helpers {
		p.jobs <- func() {
			defer done.Done()
			drain()
		}
	}
	done.Wait()
}
