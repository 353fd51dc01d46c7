package executor

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDriverQueue_RunsEveryEnqueuedAdvance(t *testing.T) {
	var ran int64
	var wg sync.WaitGroup

	q := NewDriverQueue(func(string) {
		defer wg.Done()
		atomic.AddInt64(&ran, 1)
	}, nil, WithWorkers(3), WithQueueSize(16))

	for i := 0; i < 10; i++ {
		wg.Add(1)
		if !q.Enqueue("job") {
			t.Fatalf("enqueue %d rejected", i)
		}
	}
	wg.Wait()
	q.Shutdown(context.Background())

	if n := atomic.LoadInt64(&ran); n != 10 {
		t.Fatalf("ran %d advances, want 10", n)
	}
}

func TestDriverQueue_BoundsConcurrency(t *testing.T) {
	var active, peak int64
	var wg sync.WaitGroup

	q := NewDriverQueue(func(string) {
		defer wg.Done()
		cur := atomic.AddInt64(&active, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt64(&active, -1)
	}, nil, WithWorkers(2), WithQueueSize(32))

	for i := 0; i < 12; i++ {
		wg.Add(1)
		q.Enqueue("job")
	}
	wg.Wait()
	q.Shutdown(context.Background())

	if p := atomic.LoadInt64(&peak); p > 2 {
		t.Fatalf("peak concurrency %d exceeds worker count 2", p)
	}
}

func TestDriverQueue_RejectsAfterShutdown(t *testing.T) {
	q := NewDriverQueue(func(string) {}, nil, WithWorkers(1))
	q.Shutdown(context.Background())
	if q.Enqueue("job") {
		t.Fatalf("enqueue after shutdown must be rejected")
	}
	// Second shutdown is a no-op.
	q.Shutdown(context.Background())
}
