package model

import "time"

// Confirmation is a pending delete that the session must confirm before it is
// dispatched.
type Confirmation struct {
	Token     string    `json:"token"`
	Owner     string    `json:"-"`
	Resource  string    `json:"resource"`
	EntityID  string    `json:"entityId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
