package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"travel-backoffice/config"
	"travel-backoffice/internal/model"
	"travel-backoffice/internal/querycache"
	apperrors "travel-backoffice/pkg/app_errors"
	"travel-backoffice/pkg/logger"

	"go.uber.org/zap"
)

// Registry owns the workspaces of this gateway instance, keyed by token.
// It also fans cache invalidations out to every live workspace.
type Registry struct {
	store         Store
	defaultTTL    time.Duration
	debounce      time.Duration
	keepUnusedFor time.Duration
	now           func() time.Time

	mu         sync.RWMutex
	workspaces map[string]*Workspace
}

func NewRegistry(store Store, sessionCfg config.SessionConfig, cacheCfg config.CacheConfig) *Registry {
	return &Registry{
		store:         store,
		defaultTTL:    sessionCfg.DefaultTTL,
		debounce:      cacheCfg.DebounceWindow,
		keepUnusedFor: cacheCfg.KeepUnusedFor,
		now:           time.Now,
		workspaces:    make(map[string]*Workspace),
	}
}

// Open starts a fresh workspace for token, closing any workspace the token
// already had so no state of an earlier login survives.
func (r *Registry) Open(ctx context.Context, token string) (*Workspace, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	now := r.now()
	ttl := TokenTTL(token, r.defaultTTL, now)
	if ttl <= 0 {
		return nil, apperrors.ErrSessionExpired
	}
	ws := newWorkspace(token, nil, querycache.New(r.keepUnusedFor), r.debounce, now, ttl)

	r.mu.Lock()
	stale := r.workspaces[ws.ID]
	r.workspaces[ws.ID] = ws
	r.mu.Unlock()

	if stale != nil {
		stale.close()
	}
	logger.WithComponent("session").Info("Workspace opened",
		zap.String("session", ws.ID[:12]),
		zap.Duration("ttl", ttl))
	return ws, nil
}

// Resolve returns the workspace for token. A token unknown to this instance is
// adopted from the shared store; one unknown to the store has expired.
func (r *Registry) Resolve(ctx context.Context, token string) (*Workspace, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	id := TokenID(token)
	now := r.now()

	r.mu.RLock()
	ws, ok := r.workspaces[id]
	r.mu.RUnlock()
	if ok && now.Before(ws.ExpiresAt) {
		return ws, nil
	}
	if ok {
		r.drop(id, ws)
		return nil, apperrors.ErrSessionExpired
	}

	principal, err := r.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	ttl := TokenTTL(token, r.defaultTTL, now)
	if ttl <= 0 {
		return nil, apperrors.ErrSessionExpired
	}
	ws = newWorkspace(token, principal, querycache.New(r.keepUnusedFor), r.debounce, now, ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.workspaces[id]; ok {
		return existing, nil
	}
	r.workspaces[id] = ws
	return ws, nil
}

// Remember records the principal on the workspace and in the shared store.
func (r *Registry) Remember(ctx context.Context, ws *Workspace, principal *model.Principal) error {
	ws.SetPrincipal(principal)
	ttl := ws.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return apperrors.ErrSessionExpired
	}
	return r.store.Save(ctx, ws.Token(), principal, ttl)
}

// Close ends the session for token on this instance and in the shared store.
func (r *Registry) Close(ctx context.Context, token string) error {
	id := TokenID(token)
	r.mu.RLock()
	ws, ok := r.workspaces[id]
	r.mu.RUnlock()
	if ok {
		r.drop(id, ws)
	}
	if err := r.store.Delete(ctx, token); err != nil && !errors.Is(err, apperrors.ErrSessionExpired) {
		return err
	}
	return nil
}

func (r *Registry) drop(id string, ws *Workspace) {
	r.mu.Lock()
	if r.workspaces[id] == ws {
		delete(r.workspaces, id)
	}
	r.mu.Unlock()
	ws.close()
}

// Invalidate dirties the tagged entries of every live workspace.
func (r *Registry) Invalidate(tags ...querycache.Tag) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	touched := 0
	for _, ws := range r.workspaces {
		touched += ws.Cache.Invalidate(tags...)
	}
	return touched
}

// Prune closes expired workspaces and prunes unused entries from the rest.
func (r *Registry) Prune() (closed, pruned int) {
	now := r.now()
	r.mu.RLock()
	var expired []*Workspace
	for _, ws := range r.workspaces {
		if !now.Before(ws.ExpiresAt) {
			expired = append(expired, ws)
			continue
		}
		pruned += ws.Cache.Prune()
	}
	r.mu.RUnlock()

	for _, ws := range expired {
		r.drop(ws.ID, ws)
	}
	return len(expired), pruned
}

// RunPruner calls Prune every interval until ctx is done.
func (r *Registry) RunPruner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			closed, pruned := r.Prune()
			if closed > 0 || pruned > 0 {
				logger.WithComponent("session").Debug("Pruned workspaces",
					zap.Int("closed", closed),
					zap.Int("entries", pruned))
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workspaces)
}

// CloseAll tears down every workspace on shutdown. The shared store is left
// intact so other instances keep serving the sessions.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	workspaces := r.workspaces
	r.workspaces = make(map[string]*Workspace)
	r.mu.Unlock()
	for _, ws := range workspaces {
		ws.close()
	}
}
