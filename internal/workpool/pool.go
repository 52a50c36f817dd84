// Package workpool is a small goroutine worker pool used by
// manually-timed closures that need to demonstrate thread-pool
// accumulation studies: it must be fully started, given work, and
// joined before the closure's Timer cell is stopped, so none of the
// pool's internal goroutines are still running when the measurement
// ends.
package workpool

import (
	"context"
	"runtime"
	"sync"

	"github.com/ehrlich-b/mtrstudy/internal/logging"
	"golang.org/x/sys/unix"
)

// Pool runs submitted jobs across a fixed number of worker
// goroutines, each optionally pinned to one CPU.
type Pool struct {
	jobs   chan func()
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New starts a pool of n worker goroutines. When pin is true, worker
// i is pinned to CPU i via SchedSetaffinity (best-effort; a failure
// to pin is logged and the worker still runs unpinned).
func New(n int, pin bool) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:   make(chan func()),
		cancel: cancel,
	}

	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i, pin)
	}
	return p
}

func (p *Pool) worker(ctx context.Context, idx int, pin bool) {
	defer p.wg.Done()

	if pin {
		// SchedSetaffinity with pid 0 pins the calling OS thread, so
		// the goroutine must be locked to its thread for the pin to
		// stick for its whole lifetime.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := pinToCPU(idx); err != nil {
			logging.Debug("workpool: affinity pin failed", "worker", idx, "err", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			job()
		}
	}
}

func pinToCPU(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}

// Submit enqueues a job for execution by one of the pool's workers.
// Submit must not be called after Join.
func (p *Pool) Submit(job func()) {
	p.jobs <- job
}

// Join closes the job queue, waits for every worker to finish its
// current job and exit, and returns. Callers must call Join before
// their manually-timed closure stops its Timer cell, or the
// measurement is undefined per the engine's concurrency model.
func (p *Pool) Join() {
	close(p.jobs)
	p.wg.Wait()
	p.cancel()
}
