package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingInvalidator remembers every invalidation it receives.
type recordingInvalidator struct {
	mu    sync.Mutex
	calls [][]querycache.Tag
}

func (r *recordingInvalidator) Invalidate(tags ...querycache.Tag) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, tags)
	return len(tags)
}

func (r *recordingInvalidator) snapshot() [][]querycache.Tag {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]querycache.Tag(nil), r.calls...)
}

// ackTracker wraps a queue and counts how deliveries were settled.
type ackTracker struct {
	queue.InvalidationQueue
	mu     sync.Mutex
	acked  []string
	nacked []string
}

func (a *ackTracker) Subscribe(ctx context.Context) (<-chan queue.Delivery, error) {
	in, err := a.InvalidationQueue.Subscribe(ctx)
	if err != nil {
		return nil, err
	}
	out := make(chan queue.Delivery)
	go func() {
		defer close(out)
		for d := range in {
			id := d.Data.ID
			out <- queue.Delivery{
				Data: d.Data,
				Ack: func() {
					a.mu.Lock()
					a.acked = append(a.acked, id)
					a.mu.Unlock()
				},
				Nack: func(requeue bool) {
					a.mu.Lock()
					a.nacked = append(a.nacked, id)
					a.mu.Unlock()
				},
			}
		}
	}()
	return out, nil
}

func (a *ackTracker) settled() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.acked) + len(a.nacked)
}

func TestInvalidationWorker(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := &ackTracker{InvalidationQueue: queue.NewInvalidationQueue(10)}
	caches := &recordingInvalidator{}
	w := NewInvalidationWorker(caches, q, "gateway-a")
	require.NoError(t, w.Start(ctx))

	events := []*model.InvalidationEvent{
		{ID: "e1", Origin: "gateway-b", Tags: []string{"Payments", "Ledgers"}, Mutation: "createPayment"},
		{ID: "e2", Origin: "gateway-a", Tags: []string{"Tickets"}, Mutation: "createTicket"},
		{ID: "e3", Origin: "gateway-b", Tags: []string{"Leadgers"}, Mutation: "legacy"},
	}
	for _, e := range events {
		require.NoError(t, q.Publish(ctx, e))
	}

	require.Eventually(t, func() bool { return q.settled() == 3 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, [][]querycache.Tag{{querycache.TagPayments, querycache.TagLedgers}}, caches.snapshot())
	q.mu.Lock()
	defer q.mu.Unlock()
	assert.Equal(t, []string{"e1", "e2"}, q.acked)
	assert.Equal(t, []string{"e3"}, q.nacked)
}
