package querycache

import "context"

// Invalidator is anything that can dirty cached reads by tag: a single Cache,
// or a registry fanning out to many.
type Invalidator interface {
	Invalidate(tags ...Tag) int
}

// Mutate runs fn and, only if it succeeds, invalidates tags on inv.
func Mutate[T any](ctx context.Context, inv Invalidator, tags []Tag, fn func(ctx context.Context) (T, error)) (T, error) {
	result, err := fn(ctx)
	if err != nil {
		return result, err
	}
	if len(tags) > 0 {
		inv.Invalidate(tags...)
	}
	return result, nil
}
