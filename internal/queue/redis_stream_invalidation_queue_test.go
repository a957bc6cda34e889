package queue_test

import (
	"context"
	"testing"
	"time"

	"travel-backoffice/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupStream(ctx context.Context, t *testing.T) {
	t.Helper()
	_ = testRdb.Del(ctx, queue.StreamKey).Err()
}

func TestNewRedisStreamInvalidationQueue(t *testing.T) {
	rdb := requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	t.Run("Success", func(t *testing.T) {
		q, err := queue.NewRedisStreamInvalidationQueue(rdb, "instance-a", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})

	t.Run("Success - existing group", func(t *testing.T) {
		_, err := queue.NewRedisStreamInvalidationQueue(rdb, "instance-a", nil)
		require.NoError(t, err)
	})

	t.Run("Success - empty instance id", func(t *testing.T) {
		q, err := queue.NewRedisStreamInvalidationQueue(rdb, "", nil)
		require.NoError(t, err)
		require.NoError(t, q.Close(ctx))
	})
}

func TestRedisStreamInvalidationQueue_broadcastsToEveryInstance(t *testing.T) {
	rdb := requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &queue.RedisStreamInvalidationQueueConfig{ReadGroupBlockTime: 200 * time.Millisecond}
	a, err := queue.NewRedisStreamInvalidationQueue(rdb, "broadcast-a", cfg)
	require.NoError(t, err)
	b, err := queue.NewRedisStreamInvalidationQueue(rdb, "broadcast-b", cfg)
	require.NoError(t, err)

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	chA, err := a.Subscribe(subCtx)
	require.NoError(t, err)
	chB, err := b.Subscribe(subCtx)
	require.NoError(t, err)

	require.NoError(t, a.Publish(ctx, newEvent("broadcast-a", "Tickets", "Ledgers")))

	for _, ch := range []<-chan queue.Delivery{chA, chB} {
		select {
		case d, ok := <-ch:
			require.True(t, ok)
			require.NotNil(t, d.Data)
			assert.Equal(t, "broadcast-a", d.Data.Origin)
			assert.Equal(t, []string{"Tickets", "Ledgers"}, d.Data.Tags)
			d.Ack()
		case <-subCtx.Done():
			t.Fatal("timeout waiting for delivery")
		}
	}
}

func TestRedisStreamInvalidationQueue_Ack_preventsRedelivery(t *testing.T) {
	rdb := requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &queue.RedisStreamInvalidationQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 200 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamInvalidationQueue(rdb, "ack-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newEvent("origin", "Agents")))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-ch:
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for delivery")
	}

	select {
	case d, ok := <-ch:
		if ok {
			t.Fatalf("acked event redelivered: %s", d.Data.ID)
		}
	case <-time.After(time.Second):
	}
}

func TestRedisStreamInvalidationQueue_NackRequeue_redeliversAfterIdle(t *testing.T) {
	rdb := requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &queue.RedisStreamInvalidationQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 200 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamInvalidationQueue(rdb, "requeue-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newEvent("origin", "Providers")))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	first := <-ch
	require.NotNil(t, first.Data)
	first.Nack(true)

	select {
	case d, ok := <-ch:
		require.True(t, ok)
		assert.Equal(t, first.Data.ID, d.Data.ID)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("requeued event was not redelivered")
	}
}

func TestRedisStreamInvalidationQueue_poisonMessage_discardedAfterMaxRetries(t *testing.T) {
	rdb := requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &queue.RedisStreamInvalidationQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		MaxRetryCount:      3,
		ReadGroupBlockTime: 200 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamInvalidationQueue(rdb, "poison-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newEvent("origin", "Bogus")))

	subCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	received := 0
loop:
	for {
		select {
		case d, ok := <-ch:
			require.True(t, ok)
			received++
			d.Nack(true)
		case <-time.After(time.Second):
			break loop
		case <-subCtx.Done():
			t.Fatalf("poison event never discarded, received %d times", received)
		}
	}
	assert.GreaterOrEqual(t, received, 1)
	assert.LessOrEqual(t, received, cfg.MaxRetryCount)
}

func TestRedisStreamInvalidationQueue_Close_destroysGroup(t *testing.T) {
	rdb := requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamInvalidationQueue(rdb, "close-test", nil)
	require.NoError(t, err)
	require.NoError(t, q.Close(ctx))

	groups, err := rdb.XInfoGroups(ctx, queue.StreamKey).Result()
	require.NoError(t, err)
	for _, g := range groups {
		assert.NotEqual(t, "gateway:close-test", g.Name)
	}
}
