package upstream

import (
	"context"
	"errors"
	"net/http"

	"travel-backoffice/internal/model"
)

var ErrNoSessionToken = errors.New("login response carried no session token")

// Auth wraps the backend's session endpoints.
type Auth struct {
	client *Client
}

func NewAuth(c *Client) *Auth {
	return &Auth{client: c}
}

// Login exchanges credentials for the backend session token, read from the
// Set-Cookie header or, failing that, a token field in the body.
func (a *Auth) Login(ctx context.Context, in *model.LoginInput) (string, error) {
	resp, err := a.client.send(ctx, request{method: http.MethodPost, path: "users/login", body: in})
	if err != nil {
		return "", err
	}
	for _, cookie := range resp.cookies {
		if cookie.Name == a.client.cookieName && cookie.Value != "" {
			return cookie.Value, nil
		}
	}
	if env, err := decodeEnvelope(resp.body); err == nil {
		var token string
		if env.field(&token, "token") == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrNoSessionToken
}

func (a *Auth) Logout(ctx context.Context, token string) error {
	_, err := a.client.send(ctx, request{method: http.MethodPost, path: "users/logout", token: token})
	return err
}

// Me probes the session and returns the logged-in user.
func (a *Auth) Me(ctx context.Context, token string) (*model.Principal, error) {
	resp, err := a.client.send(ctx, request{method: http.MethodGet, path: "users/get-user/me", token: token})
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(resp.body)
	if err != nil {
		return nil, err
	}
	var principal model.Principal
	if err := env.field(&principal, "user", "data"); err != nil {
		return nil, err
	}
	return &principal, nil
}
