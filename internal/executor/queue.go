package executor

import (
	"context"
	"log/slog"
	"sync"
)

// DriverQueue runs job advances on a fixed pool of workers, so a burst of
// submissions cannot spawn unbounded drivers. Each queued entry is one
// advance request (fresh start or resume) identified by job id.
type DriverQueue struct {
	run     func(jobID string)
	logger  *slog.Logger
	workers int

	ch   chan string
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type QueueOption func(*DriverQueue)

func WithWorkers(n int) QueueOption {
	return func(q *DriverQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) QueueOption {
	return func(q *DriverQueue) {
		if n > 0 {
			q.ch = make(chan string, n)
		}
	}
}

func NewDriverQueue(run func(jobID string), logger *slog.Logger, opts ...QueueOption) *DriverQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &DriverQueue{
		run:     run,
		logger:  logger,
		workers: 8,
		ch:      make(chan string, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *DriverQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("driver worker started", "worker_id", workerID)
				for jobID := range q.ch {
					q.run(jobID)
				}
				q.logger.Info("driver worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue schedules one advance. Returns false if the queue is shut down.
// A full queue blocks the caller rather than dropping the advance.
func (q *DriverQueue) Enqueue(jobID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", jobID)
		return false
	}
	select {
	case q.ch <- jobID:
	default:
		q.logger.Warn("driver queue full, applying backpressure", "job_id", jobID)
		q.ch <- jobID
	}
	return true
}

// Shutdown stops accepting advances and waits for the workers to drain, or
// for the context to expire.
func (q *DriverQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("driver queue drained, shutdown complete")
	}
}
