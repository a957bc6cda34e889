package session

import (
	"context"
	"sync"
	"time"

	"travel-backoffice/internal/model"
	apperrors "travel-backoffice/pkg/app_errors"

	"github.com/google/uuid"
)

// ConfirmationStore persists pending delete confirmations.
type ConfirmationStore interface {
	Put(ctx context.Context, c *model.Confirmation, ttl time.Duration) error
	// Consume deletes the confirmation if it belongs to owner and names the
	// same resource and entity. Anything else yields apperrors.ErrConfirmationNeeded
	// and leaves the confirmation in place.
	Consume(ctx context.Context, owner, token, resource, entityID string) error
	// Cancel deletes the confirmation if it belongs to owner. It returns
	// apperrors.ErrNotFound otherwise.
	Cancel(ctx context.Context, owner, token string) error
}

// ConfirmationGate enforces confirm-then-delete: a delete is only dispatched
// with a single-use token issued for that exact resource and entity.
type ConfirmationGate struct {
	store ConfirmationStore
	ttl   time.Duration
	now   func() time.Time
}

func NewConfirmationGate(store ConfirmationStore, ttl time.Duration) *ConfirmationGate {
	return &ConfirmationGate{store: store, ttl: ttl, now: time.Now}
}

func (g *ConfirmationGate) Request(ctx context.Context, ws *Workspace, resource, entityID string) (*model.Confirmation, error) {
	c := &model.Confirmation{
		Token:     uuid.NewString(),
		Owner:     ws.ID,
		Resource:  resource,
		EntityID:  entityID,
		ExpiresAt: g.now().Add(g.ttl),
	}
	if err := g.store.Put(ctx, c, g.ttl); err != nil {
		return nil, err
	}
	return c, nil
}

func (g *ConfirmationGate) Confirm(ctx context.Context, ws *Workspace, token, resource, entityID string) error {
	if token == "" {
		return apperrors.ErrConfirmationNeeded
	}
	return g.store.Consume(ctx, ws.ID, token, resource, entityID)
}

func (g *ConfirmationGate) Cancel(ctx context.Context, ws *Workspace, token string) error {
	return g.store.Cancel(ctx, ws.ID, token)
}

// MemoryConfirmationStore keeps confirmations in process.
type MemoryConfirmationStore struct {
	mu      sync.Mutex
	pending map[string]model.Confirmation
	now     func() time.Time
}

func NewMemoryConfirmationStore() *MemoryConfirmationStore {
	return &MemoryConfirmationStore{pending: make(map[string]model.Confirmation), now: time.Now}
}

func (s *MemoryConfirmationStore) Put(ctx context.Context, c *model.Confirmation, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *c
	stored.ExpiresAt = s.now().Add(ttl)
	s.pending[c.Token] = stored
	return nil
}

// lookup returns the live confirmation for token. Callers hold s.mu.
func (s *MemoryConfirmationStore) lookup(owner, token string) (model.Confirmation, bool) {
	c, ok := s.pending[token]
	if !ok {
		return model.Confirmation{}, false
	}
	if !s.now().Before(c.ExpiresAt) {
		delete(s.pending, token)
		return model.Confirmation{}, false
	}
	return c, c.Owner == owner
}

func (s *MemoryConfirmationStore) Consume(ctx context.Context, owner, token, resource, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.lookup(owner, token)
	if !ok || c.Resource != resource || c.EntityID != entityID {
		return apperrors.ErrConfirmationNeeded
	}
	delete(s.pending, token)
	return nil
}

func (s *MemoryConfirmationStore) Cancel(ctx context.Context, owner, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lookup(owner, token); !ok {
		return apperrors.ErrNotFound
	}
	delete(s.pending, token)
	return nil
}
