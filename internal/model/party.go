package model

// Agent sells tickets on behalf of the agency and carries its own ledger.
type Agent struct {
	Ref     string  `json:"_id,omitempty"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
	CF      *string `json:"cf,omitempty"`
}

// Provider supplies tickets, hotel rooms and visas.
type Provider struct {
	Ref     string  `json:"_id,omitempty"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
	CF      *string `json:"cf,omitempty"`
}

// PartyInput is the create/update payload shared by agents and providers.
type PartyInput struct {
	ID      string  `json:"id" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required"`
	Address *string `json:"address,omitempty"`
	CF      *string `json:"cf,omitempty"`
}
