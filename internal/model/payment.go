package model

import "time"

type Payment struct {
	Ref           string     `json:"_id,omitempty"`
	EntityID      string     `json:"entityId"`
	EntityType    EntityType `json:"entityType"`
	Amount        Money      `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentDate   time.Time  `json:"paymentDate"`
	Reference     string     `json:"reference,omitempty"`
	Description   string     `json:"description,omitempty"`
}

// PaymentInput is what the payment form submits before normalization.
type PaymentInput struct {
	EntityID      string     `json:"entityId" validate:"required"`
	EntityType    EntityType `json:"entityType" validate:"required,oneof=Agents Tickets"`
	Amount        float64    `json:"amount" validate:"gt=0"`
	PaymentMethod string     `json:"paymentMethod" validate:"required"`
	PaymentDate   string     `json:"paymentDate" validate:"required"`
	Reference     string     `json:"reference,omitempty"`
	Description   string     `json:"description,omitempty"`
}
