package service

import (
	"context"
	"fmt"

	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/session"
)

// query declares the cached read name(args) for the workspace cache.
func query[T any](name string, args any, fetch func(ctx context.Context) (T, error)) querycache.Query {
	return querycache.Query{
		Key:  querycache.NewKey(name, args),
		Tags: endpoint(name).Provides,
		Fetch: func(ctx context.Context) (any, error) {
			return fetch(ctx)
		},
	}
}

// read observes name(args) through the workspace cache.
func read[T any](ctx context.Context, ws *session.Workspace, name string, args any, fetch func(ctx context.Context) (T, error)) (T, error) {
	return querycache.Get(ctx, ws.Cache, querycache.NewKey(name, args), endpoint(name).Provides, fetch)
}

// readQuery observes a query built by query[T].
func readQuery[T any](ctx context.Context, ws *session.Workspace, q querycache.Query) (T, error) {
	var zero T
	value, err := ws.Cache.Read(ctx, q)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cached %s holds %T", q.Key, value)
	}
	return typed, nil
}
