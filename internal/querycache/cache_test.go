package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a fetch function that returns its own call count.
type counter struct {
	calls atomic.Int32
}

func (c *counter) fetch(ctx context.Context) (any, error) {
	return int(c.calls.Add(1)), nil
}

func (c *counter) count() int { return int(c.calls.Load()) }

func TestCache_ReadServesFreshEntry(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	src := &counter{}
	q := Query{Key: NewKey("tickets", nil), Tags: []Tag{TagTickets}, Fetch: src.fetch}

	first, err := c.Read(ctx, q)
	require.NoError(t, err)
	second, err := c.Read(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, src.count())
}

func TestCache_PaymentDirtiesLedgerSummary(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	summary := &counter{}
	agents := &counter{}
	summaryQuery := Query{Key: NewKey("ledgerSummary", nil), Tags: []Tag{TagLedgers}, Fetch: summary.fetch}
	agentsQuery := Query{Key: NewKey("agents", nil), Tags: []Tag{TagAgents}, Fetch: agents.fetch}

	_, err := c.Read(ctx, summaryQuery)
	require.NoError(t, err)
	_, err = c.Read(ctx, agentsQuery)
	require.NoError(t, err)

	_, err = Mutate(ctx, c, []Tag{TagPayments, TagLedgers}, func(ctx context.Context) (string, error) {
		return "payment-1", nil
	})
	require.NoError(t, err)

	state, ok := c.State(summaryQuery.Key)
	require.True(t, ok)
	assert.True(t, state.Dirty)
	assert.Equal(t, 1, summary.count(), "invalidation must not refetch on its own")

	value, err := c.Read(ctx, summaryQuery)
	require.NoError(t, err)
	assert.Equal(t, 2, value)

	_, err = c.Read(ctx, agentsQuery)
	require.NoError(t, err)
	assert.Equal(t, 1, agents.count())
}

func TestCache_InvalidateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	src := &counter{}
	q := Query{Key: NewKey("users", nil), Tags: []Tag{TagUsers}, Fetch: src.fetch}

	_, err := c.Read(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Invalidate(TagUsers))
	assert.Equal(t, 1, c.Invalidate(TagUsers, TagUsers))
	c.Invalidate(TagUsers)

	_, err = c.Read(ctx, q)
	require.NoError(t, err)
	_, err = c.Read(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, 2, src.count())
}

func TestCache_ParameterizedKeysShareTags(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	page1, page2, methods := &counter{}, &counter{}, &counter{}
	q1 := Query{Key: NewKey("tickets", map[string]any{"page": 1, "search": "doha"}), Tags: []Tag{TagTickets}, Fetch: page1.fetch}
	q2 := Query{Key: NewKey("tickets", map[string]any{"page": 2, "search": "doha"}), Tags: []Tag{TagTickets}, Fetch: page2.fetch}
	q3 := Query{Key: NewKey("paymentMethods", nil), Tags: []Tag{TagPaymentMethods}, Fetch: methods.fetch}

	for _, q := range []Query{q1, q2, q3} {
		_, err := c.Read(ctx, q)
		require.NoError(t, err)
	}
	require.NotEqual(t, q1.Key, q2.Key)
	assert.Equal(t, 3, c.Stats().Entries)

	assert.Equal(t, 2, c.Invalidate(TagTickets))

	stats := c.Stats()
	assert.Equal(t, 2, stats.Dirty)
	state, _ := c.State(q3.Key)
	assert.False(t, state.Dirty)
}

func TestCache_FailedMutationInvalidatesNothing(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	src := &counter{}
	q := Query{Key: NewKey("users", nil), Tags: []Tag{TagUsers, TagCurrentUser}, Fetch: src.fetch}
	_, err := c.Read(ctx, q)
	require.NoError(t, err)

	upstreamErr := errors.New("Failed to update user.")
	_, err = Mutate(ctx, c, []Tag{TagUsers, TagCurrentUser}, func(ctx context.Context) (any, error) {
		return nil, upstreamErr
	})

	assert.ErrorIs(t, err, upstreamErr)
	assert.Equal(t, 0, c.Stats().Dirty)
	_, err = c.Read(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, src.count())
}

func TestCache_InvalidationDuringFetchLeavesEntryDirty(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	q := Query{
		Key:  NewKey("ledgerSummary", nil),
		Tags: []Tag{TagLedgers},
		Fetch: func(ctx context.Context) (any, error) {
			n := calls.Add(1)
			if n == 1 {
				close(started)
				<-release
			}
			return int(n), nil
		},
	}

	done := make(chan any, 1)
	go func() {
		value, _ := c.Read(ctx, q)
		done <- value
	}()

	<-started
	c.Invalidate(TagLedgers)
	close(release)

	assert.Equal(t, 1, <-done)
	state, ok := c.State(q.Key)
	require.True(t, ok)
	assert.True(t, state.HasValue)
	assert.True(t, state.Dirty)

	value, err := c.Read(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 2, value)
	state, _ = c.State(q.Key)
	assert.False(t, state.Dirty)
}

func TestCache_ConcurrentReadersShareOneFetch(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	release := make(chan struct{})
	var calls atomic.Int32
	q := Query{
		Key:  NewKey("agents", nil),
		Tags: []Tag{TagAgents},
		Fetch: func(ctx context.Context) (any, error) {
			calls.Add(1)
			<-release
			return "agents", nil
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := c.Read(ctx, q)
			assert.NoError(t, err)
			assert.Equal(t, "agents", value)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_FetchErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	fail := true
	q := Query{
		Key:  NewKey("providers", nil),
		Tags: []Tag{TagProviders},
		Fetch: func(ctx context.Context) (any, error) {
			if fail {
				return nil, errors.New("upstream unavailable")
			}
			return "providers", nil
		},
	}

	_, err := c.Read(ctx, q)
	assert.Error(t, err)
	state, _ := c.State(q.Key)
	assert.False(t, state.HasValue)

	fail = false
	value, err := c.Read(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "providers", value)
}

func TestCache_Prune(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	unused := Query{Key: NewKey("agents", nil), Tags: []Tag{TagAgents}, Fetch: (&counter{}).fetch}
	watched := Query{Key: NewKey("tickets", "search=doha"), Tags: []Tag{TagTickets}, Fetch: (&counter{}).fetch}

	_, err := c.Read(ctx, unused)
	require.NoError(t, err)
	sub := c.Subscribe(watched)
	_, err = sub.Read(ctx)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 0, c.Prune())

	now = now.Add(31 * time.Second)
	assert.Equal(t, 1, c.Prune())
	_, ok := c.State(unused.Key)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Invalidate(TagAgents))

	state, ok := c.State(watched.Key)
	require.True(t, ok)
	assert.Equal(t, 1, state.Subscribers)

	sub.Close()
	sub.Close()
	state, _ = c.State(watched.Key)
	assert.Equal(t, 0, state.Subscribers)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, c.Prune())
	assert.Equal(t, 0, c.Stats().Entries)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)

	t.Run("Success", func(t *testing.T) {
		names, err := Get(ctx, c, NewKey("names", nil), []Tag{TagAgents}, func(ctx context.Context) ([]string, error) {
			return []string{"Blue Sky"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Blue Sky"}, names)
	})

	t.Run("Failed - type mismatch", func(t *testing.T) {
		_, err := Get(ctx, c, NewKey("names", nil), []Tag{TagAgents}, func(ctx context.Context) (int, error) {
			return 0, nil
		})
		assert.Error(t, err)
	})
}

func TestNewKey(t *testing.T) {
	a := NewKey("tickets", map[string]any{"page": 1, "search": "x"})
	b := NewKey("tickets", map[string]any{"search": "x", "page": 1})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, NewKey("tickets", map[string]any{"page": 2, "search": "x"}))
	assert.Equal(t, Key("me"), NewKey("me", nil))
	assert.Equal(t, Key("ticket:abc"), NewKey("ticket", "abc"))
}

func TestParseTags(t *testing.T) {
	tags, err := ParseTags([]string{"Ledgers", "Login User"})
	require.NoError(t, err)
	assert.Equal(t, []Tag{TagLedgers, TagCurrentUser}, tags)
	assert.Equal(t, []string{"Ledgers", "Login User"}, Strings(tags))

	_, err = ParseTags([]string{"Leadgers"})
	assert.Error(t, err)
}
