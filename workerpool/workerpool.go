// Package workerpool provides a persistent worker pool for row-parallel image
// stages. A Pool is created once (usually by the CLI) and reused by every
// convolution, gradient and suppression pass, so no goroutines are spawned
// per stage.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	det := canny.NewDetector(canny.WithRunner(pool))
//	edges, err := det.Detect(img)
//
// Pool satisfies raster.Runner.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultGrain is the minimum number of indices handed to a single worker.
// Ranges shorter than two grains run on the calling goroutine.
const DefaultGrain = 16

// Pool is a persistent worker pool reused across many parallel operations.
type Pool struct {
	numWorkers int
	grain      int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent goroutines.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		grain:      DefaultGrain,
		workC:      make(chan workItem, numWorkers*2),
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

// SetGrain overrides the minimum chunk size. Values < 1 are treated as 1.
// Not safe to call concurrently with ParallelFor.
func (p *Pool) SetGrain(g int) {
	if g < 1 {
		g = 1
	}
	p.grain = g
}

// Close shuts down the pool. Pending work completes; later calls to
// ParallelFor run sequentially. Calling Close more than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into contiguous chunks, one per
// worker, and blocks until every chunk is done. Chunks never overlap, so fn
// may write to index-owned output without further synchronization.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n/p.grain)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}
