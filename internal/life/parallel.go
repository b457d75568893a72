package life

import (
	"runtime"
	"sync"
)

// minRowsPerWorker keeps tiny grids on a single goroutine.
const minRowsPerWorker = 8

// StepParallel is Step with rows split across workers goroutines. Each
// worker writes a disjoint row range of a fresh grid, so the result is
// identical to Step regardless of scheduling. workers <= 0 means GOMAXPROCS.
func StepParallel(g *Grid, workers int) *Grid {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := newGrid(g.rows, g.cols)
	ParallelFor(g.rows, minRowsPerWorker, workers, func(start, end int) {
		stepRows(g, out, start, end)
	})
	return out
}

// ParallelFor executes fn over [0, n) in contiguous chunks, using at most
// workers goroutines and at least minChunk items per chunk.
func ParallelFor(n, minChunk, workers int, fn func(start, end int)) {
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
