package queue_test

import (
	"context"
	"testing"
	"time"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(origin string, tags ...string) *model.InvalidationEvent {
	return &model.InvalidationEvent{
		ID:         "evt-" + origin,
		Origin:     origin,
		Tags:       tags,
		Mutation:   "createPayment",
		OccurredAt: time.Now().UTC(),
	}
}

func TestInvalidationQueue_PublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewInvalidationQueue(4)
	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, q.Publish(ctx, newEvent("a", "Payments", "Ledgers")))

	select {
	case d := <-ch:
		require.NotNil(t, d.Data)
		assert.Equal(t, "a", d.Data.Origin)
		assert.Equal(t, []string{"Payments", "Ledgers"}, d.Data.Tags)
		d.Ack()
	case <-ctx.Done():
		t.Fatal("timeout waiting for delivery")
	}
}

func TestInvalidationQueue_NackRequeue(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewInvalidationQueue(4)
	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newEvent("a", "Agents")))

	first := <-ch
	first.Nack(true)

	select {
	case d := <-ch:
		assert.Equal(t, first.Data, d.Data)
	case <-ctx.Done():
		t.Fatal("requeued event was not redelivered")
	}
}

func TestInvalidationQueue_ctxCancel_closesChannel(t *testing.T) {
	q := queue.NewInvalidationQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestInvalidationQueue_Publish_blockedUntilCtxDone(t *testing.T) {
	q := queue.NewInvalidationQueue(1)
	require.NoError(t, q.Publish(context.Background(), newEvent("a", "Users")))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := q.Publish(ctx, newEvent("b", "Users"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
