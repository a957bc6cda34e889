package session

import (
	"sync"
	"time"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/search"
)

// Workspace is everything the gateway keeps for one logged-in session: the
// upstream token, the principal, the query cache and the open search boxes.
type Workspace struct {
	ID        string
	Cache     *querycache.Cache
	OpenedAt  time.Time
	ExpiresAt time.Time

	token    string
	debounce time.Duration

	mu        sync.Mutex
	principal *model.Principal
	boxes     map[string]*search.Box
	closed    bool
}

func newWorkspace(token string, principal *model.Principal, cache *querycache.Cache, debounce time.Duration, now time.Time, ttl time.Duration) *Workspace {
	return &Workspace{
		ID:        TokenID(token),
		Cache:     cache,
		OpenedAt:  now,
		ExpiresAt: now.Add(ttl),
		token:     token,
		debounce:  debounce,
		principal: principal,
		boxes:     make(map[string]*search.Box),
	}
}

// Token is the upstream credential forwarded on every backend call.
func (w *Workspace) Token() string { return w.token }

// Principal returns the current user, or nil when the session has none.
func (w *Workspace) Principal() *model.Principal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.principal
}

func (w *Workspace) SetPrincipal(p *model.Principal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.principal = p
}

// Box returns the named search box, creating it with query on first use.
func (w *Workspace) Box(name string, query search.QueryFunc) *search.Box {
	w.mu.Lock()
	defer w.mu.Unlock()
	if box, ok := w.boxes[name]; ok {
		return box
	}
	box := search.NewBox(w.Cache, w.debounce, query)
	w.boxes[name] = box
	return box
}

// FindBox returns an existing search box without creating one.
func (w *Workspace) FindBox(name string) (*search.Box, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	box, ok := w.boxes[name]
	return box, ok
}

func (w *Workspace) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *Workspace) close() {
	w.mu.Lock()
	boxes := w.boxes
	w.boxes = make(map[string]*search.Box)
	w.principal = nil
	w.closed = true
	w.mu.Unlock()

	for _, box := range boxes {
		box.Close()
	}
	w.Cache.Clear()
}
