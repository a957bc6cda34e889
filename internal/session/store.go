package session

import (
	"context"
	"sync"
	"time"

	"travel-backoffice/internal/model"
	apperrors "travel-backoffice/pkg/app_errors"
)

// Store keeps the principal of every live session so any gateway instance can
// pick a session up. Load returns apperrors.ErrSessionExpired for unknown or
// expired tokens.
type Store interface {
	Save(ctx context.Context, token string, principal *model.Principal, ttl time.Duration) error
	Load(ctx context.Context, token string) (*model.Principal, error)
	Delete(ctx context.Context, token string) error
}

type memoryEntry struct {
	principal model.Principal
	expiresAt time.Time
}

// MemoryStore is a Store for tests and single-instance setups.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Save(ctx context.Context, token string, principal *model.Principal, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[TokenID(token)] = memoryEntry{principal: *principal, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, token string) (*model.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := TokenID(token)
	e, ok := s.entries[id]
	if !ok {
		return nil, apperrors.ErrSessionExpired
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, apperrors.ErrSessionExpired
	}
	p := e.principal
	return &p, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, TokenID(token))
	return nil
}
