package workpool

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllSubmittedJobs(t *testing.T) {
	pool := New(4, false)

	var count atomic.Int64
	for i := 0; i < 64; i++ {
		pool.Submit(func() { count.Add(1) })
	}
	pool.Join()

	if got := count.Load(); got != 64 {
		t.Fatalf("expected 64 jobs run, got %d", got)
	}
}

func TestPoolJoinWaitsForInFlightWork(t *testing.T) {
	pool := New(2, false)

	var done atomic.Bool
	pool.Submit(func() {
		time.Sleep(10 * time.Millisecond)
		done.Store(true)
	})
	pool.Join()

	if !done.Load() {
		t.Fatal("expected Join to wait for in-flight work to complete")
	}
}

func TestPoolAccumulatesResultsAcrossWorkers(t *testing.T) {
	pool := New(4, false)

	results := make(chan int, 64)
	for i := 0; i < 64; i++ {
		i := i
		pool.Submit(func() { results <- i * i })
	}
	pool.Join()
	close(results)

	sum := 0
	n := 0
	for r := range results {
		sum += r
		n++
	}
	if n != 64 {
		t.Fatalf("expected 64 results, got %d", n)
	}
	// Sum of squares 0^2..63^2.
	want := 0
	for i := 0; i < 64; i++ {
		want += i * i
	}
	if sum != want {
		t.Fatalf("expected sum %d, got %d", want, sum)
	}
}
