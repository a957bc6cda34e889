package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"travel-backoffice/config"
	"travel-backoffice/internal/model"
	"travel-backoffice/internal/queue"
	"travel-backoffice/internal/session"
	"travel-backoffice/internal/upstream"

	"github.com/stretchr/testify/require"
)

// fakeBackend stands in for the travel REST API and counts calls per route.
type fakeBackend struct {
	mu     sync.Mutex
	hits   map[string]int
	routes map[string]http.HandlerFunc
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{hits: make(map[string]int), routes: make(map[string]http.HandlerFunc)}
}

func (b *fakeBackend) handle(route string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[route] = h
}

// reply answers route ("GET agents/get-all") with a fixed JSON body.
func (b *fakeBackend) reply(route string, status int, body any) {
	b.handle(route, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	})
}

func (b *fakeBackend) count(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[route]
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api/v1/")
	b.mu.Lock()
	b.hits[route]++
	h, ok := b.routes[route]
	b.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Route not found"})
		return
	}
	h(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type recordingJournal struct {
	mu         sync.Mutex
	activities []*model.Activity
}

func (j *recordingJournal) Record(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	activity.ID = len(j.activities) + 1
	j.activities = append(j.activities, activity)
	return activity, nil
}

func (j *recordingJournal) List(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]*model.Activity(nil), j.activities...), nil
}

func (j *recordingJournal) last() *model.Activity {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.activities) == 0 {
		return nil
	}
	return j.activities[len(j.activities)-1]
}

type testEnv struct {
	backend    *fakeBackend
	client     *upstream.Client
	registry   *session.Registry
	bus        queue.InvalidationQueue
	journal    *recordingJournal
	dispatcher *Dispatcher
	ws         *session.Workspace
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := config.LoadTestConfig()
	cfg.Upstream.BaseURL = srv.URL + "/api/v1"
	client, err := upstream.NewClient(cfg.Upstream)
	require.NoError(t, err)

	registry := session.NewRegistry(session.NewMemoryStore(), cfg.Session, cfg.Cache)
	t.Cleanup(registry.CloseAll)
	bus := queue.NewInvalidationQueue(32)
	journal := &recordingJournal{}

	ws, err := registry.Open(ctx, "tok-1")
	require.NoError(t, err)
	require.NoError(t, registry.Remember(ctx, ws, &model.Principal{
		Ref:      "u1",
		Username: "sara",
		Role:     model.RoleAdmin,
		IsActive: true,
	}))

	return &testEnv{
		backend:    backend,
		client:     client,
		registry:   registry,
		bus:        bus,
		journal:    journal,
		dispatcher: NewDispatcher(registry, bus, journal, "instance-test"),
		ws:         ws,
	}
}

// published drains the events announced so far.
func (e *testEnv) published(t *testing.T) []*model.InvalidationEvent {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := e.bus.Subscribe(ctx)
	require.NoError(t, err)
	var events []*model.InvalidationEvent
	for {
		select {
		case d := <-ch:
			events = append(events, d.Data)
		case <-time.After(100 * time.Millisecond):
			return events
		}
	}
}
