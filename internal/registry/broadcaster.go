package registry

import (
	"log/slog"
	"sync"
)

// subscriberBuffer bounds how far a slow consumer may fall behind before it
// is pruned.
const subscriberBuffer = 32

type subscriber struct {
	id int
	ch chan Event
}

// Broadcaster fans job-lifecycle events out to per-job subscriber sets.
// Delivery is non-blocking: a subscriber whose buffer is full is dropped and
// its channel closed, so a dead consumer can never stall the publisher.
// Events for one job reach each surviving subscriber in publish order.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]*subscriber
	log    *slog.Logger
}

func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{subs: make(map[string][]*subscriber), log: logger}
}

// Subscribe registers a listener for one job's events. The returned cancel
// func detaches the listener and closes its channel; it is safe to call after
// the broadcaster already pruned the subscriber.
func (b *Broadcaster) Subscribe(jobID string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscriber{id: b.nextID, ch: make(chan Event, subscriberBuffer)}
	b.subs[jobID] = append(b.subs[jobID], sub)

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.removeLocked(jobID, sub.id)
	}
	return sub.ch, cancel
}

// Publish delivers the event to every subscriber of event.JobID. Failed
// deliveries prune the subscriber; no error surfaces to the publisher.
func (b *Broadcaster) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[event.JobID]
	for _, sub := range subs {
		select {
		case sub.ch <- event:
		default:
			b.log.Warn("broadcast.subscriber_pruned", "job_id", event.JobID, "subscriber", sub.id)
			b.removeLocked(event.JobID, sub.id)
		}
	}
}

// DropJob detaches and closes every subscriber of the job, for job deletion.
func (b *Broadcaster) DropJob(jobID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs[jobID] {
		close(sub.ch)
	}
	delete(b.subs, jobID)
}

// SubscriberCount reports the live subscriber count for a job.
func (b *Broadcaster) SubscriberCount(jobID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[jobID])
}

func (b *Broadcaster) removeLocked(jobID string, id int) {
	subs := b.subs[jobID]
	for i, sub := range subs {
		if sub.id == id {
			close(sub.ch)
			b.subs[jobID] = append(subs[:i:i], subs[i+1:]...)
			if len(b.subs[jobID]) == 0 {
				delete(b.subs, jobID)
			}
			return
		}
	}
}
