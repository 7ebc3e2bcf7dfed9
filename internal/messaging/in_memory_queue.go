package messaging

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryQueue buffers published run events in process, for local runs and
// tests.
type InMemoryQueue struct {
	events chan RunEvent

	mu     sync.Mutex
	closed bool
}

var _ Publisher = (*InMemoryQueue)(nil)

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		events: make(chan RunEvent, 100),
	}
}

func (q *InMemoryQueue) PublishRunEvent(ctx context.Context, event RunEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return fmt.Errorf("queue is closed")
	}

	select {
	case q.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the published events in order. The channel is closed by Close.
func (q *InMemoryQueue) Events() <-chan RunEvent {
	return q.events
}

func (q *InMemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		close(q.events)
		q.closed = true
	}
}
