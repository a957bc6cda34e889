package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"travel-backoffice/config"
	"travel-backoffice/internal/model"
	apperrors "travel-backoffice/pkg/app_errors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client talks to the travel backend. Every call carries the caller's session
// token as a cookie; the client itself holds no credentials.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	cookieName string
}

func NewClient(cfg config.UpstreamConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cookieName: cfg.CookieName,
	}, nil
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

type response struct {
	status  int
	header  http.Header
	cookies []*http.Cookie
	body    []byte
}

func (c *Client) send(ctx context.Context, r request) (*response, error) {
	// path segments arrive escaped
	u := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: r.token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", r.path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.UpstreamError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	return &response{
		status:  resp.StatusCode,
		header:  resp.Header,
		cookies: resp.Cookies(),
		body:    data,
	}, nil
}

// errorMessage pulls the backend's own message out of an error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// envelope is a decoded JSON object body, keyed by top-level field.
type envelope map[string]json.RawMessage

func decodeEnvelope(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return env, nil
}

var errMissingField = errors.New("response field missing")

// field decodes the first of keys present in env into out.
func (env envelope) field(out any, keys ...string) error {
	for _, key := range keys {
		raw, ok := env[key]
		if !ok || bytes.Equal(raw, []byte("null")) {
			continue
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", errMissingField, strings.Join(keys, ", "))
}

// decodeList accepts a bare JSON array or an object holding the array under
// one of keys.
func decodeList[T any](body []byte, keys ...string) ([]T, envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, fmt.Errorf("decode response: %w", err)
		}
		return items, nil, nil
	}
	env, err := decodeEnvelope(trimmed)
	if err != nil {
		return nil, nil, err
	}
	var items []T
	if err := env.field(&items, append(keys[:len(keys):len(keys)], "data")...); err != nil {
		return nil, nil, err
	}
	return items, env, nil
}

func pageInfo(env envelope, items int) model.Pagination {
	var p model.Pagination
	if env != nil {
		_ = env.field(&p, "pagination", "meta")
	}
	if p.Total == 0 {
		p.Total = items
	}
	if p.TotalPages == 0 && items > 0 {
		p.TotalPages = 1
	}
	return p
}
