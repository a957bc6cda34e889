package search

import (
	"context"
	"sync"
	"time"

	"travel-backoffice/internal/querycache"
	"travel-backoffice/pkg/logger"

	"go.uber.org/zap"
)

// QueryFunc builds the cached read for a search term.
type QueryFunc func(term string) querycache.Query

// Result is the outcome of one fired search.
type Result struct {
	Term       string `json:"term"`
	Generation uint64 `json:"generation"`
	Value      any    `json:"data,omitempty"`
	Err        error  `json:"-"`
}

// Box is a server-side search input. Keystrokes are debounced and each fired
// query gets a generation number; a result is kept only if no newer query was
// fired after it.
type Box struct {
	ctx       context.Context
	cancel    context.CancelFunc
	cache     *querycache.Cache
	query     QueryFunc
	debouncer *Debouncer

	mu         sync.Mutex
	term       string
	generation uint64
	sub        *querycache.Subscription
	result     *Result
	settled    chan struct{}
}

// NewBox creates a box and fires the empty search right away.
func NewBox(cache *querycache.Cache, window time.Duration, query QueryFunc) *Box {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Box{
		ctx:        ctx,
		cancel:     cancel,
		cache:      cache,
		query:      query,
		debouncer:  NewDebouncer(window),
		generation: 1,
		settled:    make(chan struct{}),
	}
	go b.fire(1, "")
	return b
}

// Type records a new term. The query fires once input has been quiet for the
// debounce window. It returns the generation the term will run as.
func (b *Box) Type(term string) uint64 {
	b.mu.Lock()
	b.generation++
	generation := b.generation
	b.term = term
	b.mu.Unlock()

	b.debouncer.Trigger(func() { b.fire(generation, term) })
	return generation
}

func (b *Box) fire(generation uint64, term string) {
	q := b.query(term)
	sub := b.cache.Subscribe(q)

	b.mu.Lock()
	if generation != b.generation {
		b.mu.Unlock()
		sub.Close()
		return
	}
	previous := b.sub
	b.sub = sub
	b.mu.Unlock()
	if previous != nil {
		previous.Close()
	}

	value, err := sub.Read(b.ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if generation != b.generation {
		logger.WithComponent("search").Debug("Dropping stale search result",
			zap.String("term", term),
			zap.Uint64("generation", generation),
			zap.Uint64("current", b.generation))
		return
	}
	b.result = &Result{Term: term, Generation: generation, Value: value, Err: err}
	close(b.settled)
	b.settled = make(chan struct{})
}

// Result waits until the latest fired term has a result. Once it has, every
// call observes the entry again, so an invalidated result is refetched.
func (b *Box) Result(ctx context.Context) (Result, error) {
	for {
		b.mu.Lock()
		if b.result != nil && b.result.Generation == b.generation {
			settled, sub := *b.result, b.sub
			b.mu.Unlock()
			if sub == nil {
				return settled, nil
			}
			return b.observe(ctx, sub, settled)
		}
		settled := b.settled
		b.mu.Unlock()

		select {
		case <-settled:
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-b.ctx.Done():
			return Result{}, b.ctx.Err()
		}
	}
}

func (b *Box) observe(ctx context.Context, sub *querycache.Subscription, settled Result) (Result, error) {
	value, err := sub.Read(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}
	result := Result{Term: settled.Term, Generation: settled.Generation, Value: value, Err: err}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.generation == settled.Generation && b.sub == sub {
		b.result = &result
	}
	return result, nil
}

// Term is the last term typed.
func (b *Box) Term() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.term
}

// Close cancels pending and in-flight searches and releases the cached entry.
func (b *Box) Close() {
	b.debouncer.Stop()
	b.cancel()
	b.mu.Lock()
	sub := b.sub
	b.sub = nil
	b.generation++
	b.mu.Unlock()
	if sub != nil {
		sub.Close()
	}
}
