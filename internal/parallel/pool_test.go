package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)",
				n, pool.Workers(), runtime.GOMAXPROCS(0))
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_EveryItemOnce(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]int)

	work := make([]func(), 50)
	for i := range work {
		work[i] = func() {
			mu.Lock()
			seen[i]++
			mu.Unlock()
		}
	}

	pool.ExecuteAll(work)

	for i := range 50 {
		if seen[i] != 1 {
			t.Errorf("item %d ran %d times, want 1", i, seen[i])
		}
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Should not panic or block
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_MoreWorkThanQueue(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 1000)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if counter.Load() != 1000 {
		t.Errorf("counter = %d, want 1000", counter.Load())
	}
}

func TestWorkerPool_StealsFromSlowWorker(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	// Item 0 blocks whichever worker picks it up; the rest must still
	// finish on the other worker.
	release := make(chan struct{})
	var fast atomic.Int64

	work := make([]func(), 8)
	for i := range work {
		if i == 0 {
			work[i] = func() { <-release }
			continue
		}
		work[i] = func() { fast.Add(1) }
	}

	finished := make(chan struct{})
	go func() {
		pool.ExecuteAll(work)
		close(finished)
	}()

	deadline := time.After(2 * time.Second)
	for fast.Load() != 7 {
		select {
		case <-deadline:
			t.Fatalf("fast items = %d, want 7 while worker 0 is blocked", fast.Load())
		default:
			time.Sleep(time.Millisecond)
		}
	}

	close(release)
	<-finished
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("IsRunning() = true after Close, want false")
	}
}

func TestWorkerPool_ExecuteAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	ran := false
	pool.ExecuteAll([]func(){func() { ran = true }})

	if ran {
		t.Error("work ran after Close")
	}
}
