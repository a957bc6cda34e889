package model

type PaymentMethodType string

const (
	PaymentMethodCard    PaymentMethodType = "Card"
	PaymentMethodCash    PaymentMethodType = "Cash"
	PaymentMethodVoucher PaymentMethodType = "Voucher"
)

type PaymentMethodFor string

const (
	MethodForClient   PaymentMethodFor = "Client Payment Method"
	MethodForProvider PaymentMethodFor = "Provider Payment Method"
)

// PaymentMethod is a dropdown entry offered by the ticket and payment forms.
type PaymentMethod struct {
	Ref       string            `json:"_id,omitempty"`
	Name      string            `json:"name"`
	Type      PaymentMethodType `json:"type"`
	MethodFor PaymentMethodFor  `json:"methodFor"`
}

type PaymentMethodInput struct {
	Name      string            `json:"name" validate:"required"`
	Type      PaymentMethodType `json:"type" validate:"required,oneof=Card Cash Voucher"`
	MethodFor PaymentMethodFor  `json:"methodFor" validate:"required,oneof='Client Payment Method' 'Provider Payment Method'"`
}
