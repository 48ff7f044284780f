// Package parallel provides the worker infrastructure for per-pixel
// compositing.
//
// A composite pass is embarrassingly parallel: every destination pixel is
// independent, the two source buffers are read-only, and writes are
// disjoint. The pool therefore needs no locking around pixel work; it only
// coordinates the fan-out of row strips and the final join.
//
// Thread safety: WorkerPool is safe for concurrent use.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs independent work items on a fixed set of goroutines.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// work is the shared work queue. Strip workloads are coarse enough
	// that a single channel does not contend measurably.
	work chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		work:    make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting.
			for {
				select {
				case fn := <-p.work:
					if fn != nil {
						fn()
					}
				default:
					return
				}
			}
		case fn := <-p.work:
			if fn != nil {
				fn()
			}
		}
	}
}

// ExecuteAll runs every work item and blocks until all have completed.
// If the pool is closed, remaining items are skipped.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))

	for _, fn := range work {
		fn := fn
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.work <- wrapped:
		case <-p.done:
			wg.Done()
		}
	}

	wg.Wait()
}

// Close stops the pool after finishing queued work.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
