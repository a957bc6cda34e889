package service

import (
	"context"
	"errors"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/session"
	"travel-backoffice/internal/upstream"
	"travel-backoffice/internal/validation"
	apperrors "travel-backoffice/pkg/app_errors"
	"travel-backoffice/pkg/logger"

	"go.uber.org/zap"
)

type AuthService interface {
	// Login opens a fresh workspace for the backend session token.
	Login(ctx context.Context, in *model.LoginInput) (*session.Workspace, error)
	// Logout ends the session locally even when the backend call fails.
	Logout(ctx context.Context, ws *session.Workspace) error
	// Principal returns the logged-in user, re-probing the backend after the
	// current user was invalidated.
	Principal(ctx context.Context, ws *session.Workspace) (*model.Principal, error)
}

type AuthServiceImpl struct {
	auth       *upstream.Auth
	registry   *session.Registry
	dispatcher *Dispatcher
}

func NewAuthService(c *upstream.Client, registry *session.Registry, dispatcher *Dispatcher) AuthService {
	return &AuthServiceImpl{
		auth:       upstream.NewAuth(c),
		registry:   registry,
		dispatcher: dispatcher,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, in *model.LoginInput) (*session.Workspace, error) {
	if err := validation.ValidateLogin(in); err != nil {
		return nil, err
	}
	log := logger.WithComponent("service").With(zap.String("username", in.Username))

	token, err := s.auth.Login(ctx, in)
	if err != nil {
		s.dispatcher.record(ctx, &model.Principal{Username: in.Username}, "login", "auth", "", err)
		return nil, err
	}
	ws, err := s.registry.Open(ctx, token)
	if err != nil {
		return nil, err
	}
	ws.Cache.Invalidate(endpoint("login").Invalidates...)

	principal, err := s.Principal(ctx, ws)
	if err != nil {
		log.Warn("Session probe failed after login", zap.Error(err))
		_ = s.registry.Close(ctx, token)
		return nil, err
	}
	s.dispatcher.record(ctx, principal, "login", "auth", principal.Ref, nil)
	return ws, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, ws *session.Workspace) error {
	principal := ws.Principal()
	err := s.auth.Logout(ctx, ws.Token())
	if err != nil {
		logger.WithComponent("service").Warn("Backend logout failed", zap.Error(err))
	}
	ws.Cache.Invalidate(endpoint("logout").Invalidates...)
	if closeErr := s.registry.Close(ctx, ws.Token()); closeErr != nil {
		return closeErr
	}
	s.dispatcher.record(ctx, principal, "logout", "auth", "", err)
	return nil
}

func (s *AuthServiceImpl) Principal(ctx context.Context, ws *session.Workspace) (*model.Principal, error) {
	principal, err := read(ctx, ws, "getMe", nil, func(ctx context.Context) (*model.Principal, error) {
		principal, err := s.auth.Me(ctx, ws.Token())
		if err != nil {
			return nil, err
		}
		if err := s.registry.Remember(ctx, ws, principal); err != nil {
			return nil, err
		}
		return principal, nil
	})
	if errors.Is(err, apperrors.ErrUnauthenticated) {
		// the backend no longer knows the token
		ws.SetPrincipal(nil)
		_ = s.registry.Close(ctx, ws.Token())
		return nil, apperrors.ErrSessionExpired
	}
	return principal, err
}
