package service

import (
	"context"
	"time"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/queue"
	"travel-backoffice/internal/repository"
	"travel-backoffice/internal/session"
	"travel-backoffice/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// Dispatcher runs mutations against the backend. A successful mutation dirties
// its tags in every workspace of this instance and is announced on the bus for
// the other instances; every attempt is journaled.
type Dispatcher struct {
	local      querycache.Invalidator
	bus        queue.InvalidationQueue
	journal    repository.ActivityRepository
	instanceID string
}

// NewDispatcher wires the local invalidator (normally the session registry).
// bus and journal may be nil.
func NewDispatcher(local querycache.Invalidator, bus queue.InvalidationQueue, journal repository.ActivityRepository, instanceID string) *Dispatcher {
	return &Dispatcher{
		local:      local,
		bus:        bus,
		journal:    journal,
		instanceID: instanceID,
	}
}

func dispatch[T any](ctx context.Context, d *Dispatcher, ws *session.Workspace, mutation, entityID string, fn func(ctx context.Context) (T, error)) (T, error) {
	ep := endpoint(mutation)
	result, err := querycache.Mutate(ctx, d.local, ep.Invalidates, fn)
	if err == nil {
		d.announce(ctx, mutation, ep.Invalidates)
	}
	d.record(ctx, ws.Principal(), mutation, ep.Resource, entityID, err)
	return result, err
}

// announce publishes the invalidation for the other instances. The mutation
// already succeeded, so a failure here is only logged.
func (d *Dispatcher) announce(ctx context.Context, mutation string, tags []querycache.Tag) {
	if d.bus == nil || len(tags) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := &model.InvalidationEvent{
		ID:         uuid.NewString(),
		Origin:     d.instanceID,
		Tags:       querycache.Strings(tags),
		Mutation:   mutation,
		OccurredAt: time.Now().UTC(),
	}
	if err := d.bus.Publish(ctx, event); err != nil {
		logger.WithComponent("service").Error("Failed to publish invalidation",
			zap.String("mutation", mutation),
			zap.Strings("tags", event.Tags),
			zap.Error(err))
	}
}

func (d *Dispatcher) record(ctx context.Context, principal *model.Principal, mutation, resource, entityID string, mutationErr error) {
	if d.journal == nil {
		return
	}
	activity := &model.Activity{
		RequestID: RequestID(ctx),
		Actor:     "anonymous",
		Mutation:  mutation,
		Resource:  resource,
		Succeeded: mutationErr == nil,
	}
	if principal != nil {
		activity.Actor = principal.Username
	}
	if entityID != "" {
		activity.EntityID = &entityID
	}
	if mutationErr != nil {
		msg := mutationErr.Error()
		activity.Error = &msg
	}
	if _, err := d.journal.Record(context.WithoutCancel(ctx), activity); err != nil {
		logger.WithComponent("service").Error("Failed to journal mutation",
			zap.String("mutation", mutation),
			zap.String("request_id", activity.RequestID.String()),
			zap.Error(err))
	}
}
