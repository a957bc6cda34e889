package queue

import (
	"context"

	"travel-backoffice/internal/model"
)

type Delivery struct {
	Data *model.InvalidationEvent
	Ack  func()
	Nack func(requeue bool)
}

type InvalidationQueue interface {
	// Publish broadcasts an event to every gateway instance, this one included.
	Publish(ctx context.Context, event *model.InvalidationEvent) error
	// Subscribe delivers events until ctx is done.
	Subscribe(ctx context.Context) (<-chan Delivery, error)
	// Close releases the instance's subscription.
	Close(ctx context.Context) error
}

// InvalidationQueueImpl is the in-process bus used by tests and single
// instance deployments.
type InvalidationQueueImpl struct {
	ch chan *model.InvalidationEvent
}

func NewInvalidationQueue(bufferSize int) InvalidationQueue {
	return &InvalidationQueueImpl{
		ch: make(chan *model.InvalidationEvent, bufferSize),
	}
}

func (q *InvalidationQueueImpl) Publish(ctx context.Context, event *model.InvalidationEvent) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *InvalidationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}
				d := Delivery{
					Data: event,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							select {
							case q.ch <- event:
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *InvalidationQueueImpl) Close(ctx context.Context) error {
	return nil
}
