package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one journaled mutation attempt.
type Activity struct {
	ID        int       `json:"id" db:"id"`
	RequestID uuid.UUID `json:"request_id" db:"request_id"`
	Actor     string    `json:"actor" db:"actor"`
	Mutation  string    `json:"mutation" db:"mutation"`
	Resource  string    `json:"resource" db:"resource"`
	EntityID  *string   `json:"entity_id,omitempty" db:"entity_id"`
	Succeeded bool      `json:"succeeded" db:"succeeded"`
	Error     *string   `json:"error,omitempty" db:"error"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ActivityFilter struct {
	Resource string `form:"resource"`
	Actor    string `form:"actor"`
	Limit    int    `form:"limit"`
}
