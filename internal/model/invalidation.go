package model

import "time"

// InvalidationEvent tells every gateway instance that a mutation succeeded and
// cached reads carrying Tags are stale.
type InvalidationEvent struct {
	ID         string    `json:"id"`
	Origin     string    `json:"origin"`
	Tags       []string  `json:"tags"`
	Mutation   string    `json:"mutation"`
	OccurredAt time.Time `json:"occurredAt"`
}
