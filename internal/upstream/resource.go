package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"travel-backoffice/internal/model"
)

// Resource is one CRUD collection of the backend, e.g. /agents with
// get-all, get-agent/:id, create, update/:id and delete/:id.
type Resource[T any] struct {
	client    *Client
	path      string
	singular  string
	listKey   string
	detailKey string
}

// NewResource describes a collection. singular names the detail route
// (get-<singular>/:id); listKey and detailKey are the envelope fields the
// backend wraps lists and single records in.
func NewResource[T any](c *Client, path, singular, listKey, detailKey string) *Resource[T] {
	return &Resource[T]{client: c, path: path, singular: singular, listKey: listKey, detailKey: detailKey}
}

func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) List(ctx context.Context, token string, query url.Values) (*model.Page[T], error) {
	resp, err := r.client.send(ctx, request{method: http.MethodGet, path: r.path + "/get-all", query: query, token: token})
	if err != nil {
		return nil, err
	}
	items, env, err := decodeList[T](resp.body, r.listKey)
	if err != nil {
		return nil, err
	}
	return &model.Page[T]{Items: items, Pagination: pageInfo(env, len(items))}, nil
}

func (r *Resource[T]) Get(ctx context.Context, token, id string) (*T, error) {
	resp, err := r.client.send(ctx, request{method: http.MethodGet, path: r.path + "/get-" + r.singular + "/" + url.PathEscape(id), token: token})
	if err != nil {
		return nil, err
	}
	return r.decodeRecord(resp.body, true)
}

func (r *Resource[T]) Create(ctx context.Context, token string, body any) (*T, error) {
	resp, err := r.client.send(ctx, request{method: http.MethodPost, path: r.path + "/create", body: body, token: token})
	if err != nil {
		return nil, err
	}
	return r.decodeRecord(resp.body, false)
}

func (r *Resource[T]) Update(ctx context.Context, token, id string, body any) (*T, error) {
	resp, err := r.client.send(ctx, request{method: http.MethodPatch, path: r.path + "/update/" + url.PathEscape(id), body: body, token: token})
	if err != nil {
		return nil, err
	}
	return r.decodeRecord(resp.body, false)
}

func (r *Resource[T]) Delete(ctx context.Context, token, id string) error {
	_, err := r.client.send(ctx, request{method: http.MethodDelete, path: r.path + "/delete/" + url.PathEscape(id), token: token})
	return err
}

// decodeRecord reads the record out of its envelope. Mutations may answer
// with only a message, which yields a nil record unless required is set.
func (r *Resource[T]) decodeRecord(body []byte, required bool) (*T, error) {
	if len(body) == 0 {
		if required {
			return nil, errMissingField
		}
		return nil, nil
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var record T
	err = env.field(&record, r.detailKey, "data")
	if errors.Is(err, errMissingField) && !required {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
