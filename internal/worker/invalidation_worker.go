package worker

import (
	"context"

	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/queue"
	"travel-backoffice/pkg/logger"

	"go.uber.org/zap"
)

type InvalidationWorker interface {
	// Start applies bus events to the local caches until ctx is done.
	Start(ctx context.Context) error
}

type InvalidationWorkerImpl struct {
	caches     querycache.Invalidator
	queue      queue.InvalidationQueue
	instanceID string
}

func NewInvalidationWorker(caches querycache.Invalidator, queue queue.InvalidationQueue, instanceID string) InvalidationWorker {
	return &InvalidationWorkerImpl{
		caches:     caches,
		queue:      queue,
		instanceID: instanceID,
	}
}

func (w *InvalidationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}
	log := logger.WithComponent("worker")

	go func() {
		for msg := range msgs {
			event := msg.Data
			// the publishing instance invalidated its own caches before publishing
			if event.Origin == w.instanceID {
				msg.Ack()
				continue
			}

			tags, err := querycache.ParseTags(event.Tags)
			if err != nil {
				log.Warn("Dropping invalidation with unknown tags",
					zap.String("event_id", event.ID),
					zap.Strings("tags", event.Tags),
					zap.Error(err))
				msg.Nack(false)
				continue
			}

			touched := w.caches.Invalidate(tags...)
			log.Debug("Applied remote invalidation",
				zap.String("event_id", event.ID),
				zap.String("origin", event.Origin),
				zap.String("mutation", event.Mutation),
				zap.Int("entries", touched))
			msg.Ack()
		}
	}()
	return nil
}
