package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the current value of an entry from the source of truth.
type FetchFunc func(ctx context.Context) (any, error)

// Query describes one cached read: where it lives, which tags it provides and
// how to load it.
type Query struct {
	Key   Key
	Tags  []Tag
	Fetch FetchFunc
}

type entry struct {
	tags        []Tag
	value       any
	hasValue    bool
	dirty       bool
	version     uint64
	fetches     int
	fetchedAt   time.Time
	lastUsed    time.Time
	subscribers int
}

// EntryState is a snapshot of one entry.
type EntryState struct {
	Tags        []Tag
	HasValue    bool
	Dirty       bool
	Fetches     int
	FetchedAt   time.Time
	Subscribers int
}

type Stats struct {
	Entries    int
	Dirty      int
	Subscribed int
	Fetches    int
}

// Cache holds the reads of one session. Invalidation only marks entries
// dirty; the next Read of a dirty entry refetches it.
type Cache struct {
	mu            sync.Mutex
	entries       map[Key]*entry
	byTag         map[Tag]map[Key]struct{}
	group         singleflight.Group
	keepUnusedFor time.Duration
	now           func() time.Time
}

func New(keepUnusedFor time.Duration) *Cache {
	return &Cache{
		entries:       make(map[Key]*entry),
		byTag:         make(map[Tag]map[Key]struct{}),
		keepUnusedFor: keepUnusedFor,
		now:           time.Now,
	}
}

// lookup returns the entry for q, registering it under its tags on first use.
// Callers hold c.mu.
func (c *Cache) lookup(q Query) *entry {
	e, ok := c.entries[q.Key]
	if !ok {
		e = &entry{tags: append([]Tag(nil), q.Tags...)}
		c.entries[q.Key] = e
		for _, tag := range e.tags {
			keys, ok := c.byTag[tag]
			if !ok {
				keys = make(map[Key]struct{})
				c.byTag[tag] = keys
			}
			keys[q.Key] = struct{}{}
		}
	}
	e.lastUsed = c.now()
	return e
}

// Read observes an entry. A fresh value is returned as is; a missing or dirty
// one is fetched, with concurrent readers of the same key sharing the fetch.
func (c *Cache) Read(ctx context.Context, q Query) (any, error) {
	c.mu.Lock()
	e := c.lookup(q)
	if e.hasValue && !e.dirty {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	value, err, _ := c.group.Do(string(q.Key), func() (any, error) {
		c.mu.Lock()
		version := e.version
		c.mu.Unlock()

		value, err := q.Fetch(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		e.fetches++
		if err != nil {
			return nil, err
		}
		e.value = value
		e.hasValue = true
		e.fetchedAt = c.now()
		// an invalidation that raced the fetch keeps the entry dirty
		e.dirty = e.version != version
		return value, nil
	})
	return value, err
}

// Invalidate marks every entry providing one of tags as dirty and returns how
// many entries it touched. Repeating it before the next Read changes nothing.
func (c *Cache) Invalidate(tags ...Tag) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	touched := make(map[Key]struct{})
	for _, tag := range tags {
		for key := range c.byTag[tag] {
			if _, seen := touched[key]; seen {
				continue
			}
			touched[key] = struct{}{}
			e := c.entries[key]
			e.dirty = true
			e.version++
		}
	}
	return len(touched)
}

// Subscribe keeps the entry for q alive across Prune until the subscription
// is closed.
func (c *Cache) Subscribe(q Query) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookup(q).subscribers++
	return &Subscription{cache: c, query: q}
}

func (c *Cache) unsubscribe(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && e.subscribers > 0 {
		e.subscribers--
		e.lastUsed = c.now()
	}
}

// Prune drops entries that have no subscribers and were last observed more
// than keepUnusedFor ago.
func (c *Cache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.keepUnusedFor)
	pruned := 0
	for key, e := range c.entries {
		if e.subscribers > 0 || e.lastUsed.After(cutoff) {
			continue
		}
		c.remove(key, e)
		pruned++
	}
	return pruned
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*entry)
	c.byTag = make(map[Tag]map[Key]struct{})
}

func (c *Cache) remove(key Key, e *entry) {
	delete(c.entries, key)
	for _, tag := range e.tags {
		delete(c.byTag[tag], key)
		if len(c.byTag[tag]) == 0 {
			delete(c.byTag, tag)
		}
	}
}

func (c *Cache) State(key Key) (EntryState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return EntryState{}, false
	}
	return EntryState{
		Tags:        append([]Tag(nil), e.tags...),
		HasValue:    e.hasValue,
		Dirty:       e.dirty,
		Fetches:     e.fetches,
		FetchedAt:   e.fetchedAt,
		Subscribers: e.subscribers,
	}, true
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	var s Stats
	for _, e := range c.entries {
		s.Entries++
		s.Fetches += e.fetches
		if e.dirty {
			s.Dirty++
		}
		if e.subscribers > 0 {
			s.Subscribed++
		}
	}
	return s
}

// Subscription is a long-lived observer of one entry.
type Subscription struct {
	cache *Cache
	query Query
	once  sync.Once
}

func (s *Subscription) Key() Key { return s.query.Key }

func (s *Subscription) Read(ctx context.Context) (any, error) {
	return s.cache.Read(ctx, s.query)
}

// Close releases the subscription. Calling it twice is safe.
func (s *Subscription) Close() {
	s.once.Do(func() { s.cache.unsubscribe(s.query.Key) })
}

// Get is Read with the value asserted to T.
func Get[T any](ctx context.Context, c *Cache, key Key, tags []Tag, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	value, err := c.Read(ctx, Query{
		Key:  key,
		Tags: tags,
		Fetch: func(ctx context.Context) (any, error) {
			return fetch(ctx)
		},
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %s holds %T, not %T", key, value, zero)
	}
	return typed, nil
}
