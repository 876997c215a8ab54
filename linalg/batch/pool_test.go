// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package batch

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolSize(t *testing.T) {
	for _, tc := range []struct {
		size, want int
	}{
		{4, 4},
		{1, 1},
		{0, runtime.GOMAXPROCS(0)},
		{-3, runtime.GOMAXPROCS(0)},
	} {
		p := New(tc.size)
		require.Equal(t, tc.want, p.NumWorkers(), "New(%d)", tc.size)
		p.Close()
	}
}

// countVisits runs ParallelFor and returns how often each index was seen.
func countVisits(p *Pool, n, grain int) []int32 {
	hits := make([]atomic.Int32, n)
	p.ParallelFor(n, grain, func(start, end int) {
		for i := start; i < end; i++ {
			hits[i].Add(1)
		}
	})
	out := make([]int32, n)
	for i := range hits {
		out[i] = hits[i].Load()
	}
	return out
}

func TestParallelForVisitsEachIndexOnce(t *testing.T) {
	p := New(4)
	defer p.Close()

	for _, tc := range []struct{ n, grain int }{
		{100, 10},
		{100, 7},
		{5, 10},
		{1000, 1},
		{37, 0},
		{4097, 1024},
	} {
		for i, got := range countVisits(p, tc.n, tc.grain) {
			if got != 1 {
				t.Fatalf("ParallelFor(%d, %d): index %d visited %d times", tc.n, tc.grain, i, got)
			}
		}
	}
}

func TestParallelForChunkBounds(t *testing.T) {
	p := New(3)
	defer p.Close()

	var chunks atomic.Int32
	p.ParallelFor(95, 10, func(start, end int) {
		chunks.Add(1)
		if start%10 != 0 || end-start > 10 || end > 95 || end <= start {
			t.Errorf("bad chunk [%d, %d)", start, end)
		}
	})
	require.EqualValues(t, 10, chunks.Load())
}

func TestParallelForEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()

	p.ParallelFor(0, 10, func(start, end int) { t.Error("fn called for n == 0") })
	p.ParallelFor(-1, 10, func(start, end int) { t.Error("fn called for n < 0") })
}

func TestSequentialFallbacks(t *testing.T) {
	closed := New(4)
	closed.Close()
	closed.Close()

	for name, p := range map[string]*Pool{
		"nil":    nil,
		"closed": closed,
		"single": New(1),
	} {
		var calls int
		p.ParallelFor(5000, 10, func(start, end int) {
			calls++
			require.Equal(t, 0, start, name)
			require.Equal(t, 5000, end, name)
		})
		require.Equal(t, 1, calls, name)
		p.Close()
	}

	var none *Pool
	require.Equal(t, 1, none.NumWorkers())
}

func TestPoolReusedAcrossCalls(t *testing.T) {
	p := New(4)
	defer p.Close()

	var total atomic.Int64
	for range 50 {
		p.ParallelFor(64, 4, func(start, end int) {
			total.Add(int64(end - start))
		})
	}
	require.EqualValues(t, 50*64, total.Load())
}
