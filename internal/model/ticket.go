package model

import (
	"net/url"
	"time"
)

// OperationType selects which group of ticket fields is required.
type OperationType string

const (
	OperationIssue   OperationType = "Issue"
	OperationReIssue OperationType = "Re-Issue"
	OperationVisa    OperationType = "Visa"
	OperationUmrah   OperationType = "Umrah"
	OperationHotel   OperationType = "Hotel"
	OperationOthers  OperationType = "Others"
	OperationRefund  OperationType = "Refund"
)

func (o OperationType) IsValid() bool {
	switch o {
	case OperationIssue, OperationReIssue, OperationVisa, OperationUmrah,
		OperationHotel, OperationOthers, OperationRefund:
		return true
	}
	return false
}

// IsStay reports whether the operation books accommodation instead of a flight.
func (o OperationType) IsStay() bool {
	return o == OperationHotel || o == OperationUmrah
}

// ChargesFees reports whether provider and consumer fees must be captured.
func (o OperationType) ChargesFees() bool {
	return o == OperationReIssue || o == OperationRefund
}

type PaymentType string

const (
	PaymentFull    PaymentType = "Full"
	PaymentPartial PaymentType = "Partial"
)

func (p PaymentType) IsValid() bool {
	return p == PaymentFull || p == PaymentPartial
}

// Ticket is the flat record exchanged with the backend. Only the fields of the
// active branch are populated.
type Ticket struct {
	Ref           string        `json:"_id,omitempty"`
	OperationType OperationType `json:"operationType"`
	Provider      Ref           `json:"provider"`
	Agent         Ref           `json:"agent,omitempty"`
	PaymentType   PaymentType   `json:"paymentType"`

	AirlineCode               string     `json:"airlineCode,omitempty"`
	TicketNumberWithoutPrefix string     `json:"ticketNumberWithoutPrefix,omitempty"`
	TicketNumber              string     `json:"ticketNumber,omitempty"`
	PassengerName             string     `json:"passengerName,omitempty"`
	IssueDate                 *time.Time `json:"issueDate,omitempty"`
	DepartureDate             *time.Time `json:"departureDate,omitempty"`
	ReturnDate                *time.Time `json:"returnDate,omitempty"`
	Departure                 string     `json:"departure,omitempty"`
	Destination               string     `json:"destination,omitempty"`
	PNR                       string     `json:"pnr,omitempty"`
	ClientPaymentMethod       string     `json:"clientPaymentMethod,omitempty"`
	PaymentToProvider         string     `json:"paymentToProvider,omitempty"`
	Segment                   string     `json:"segment,omitempty"`

	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `json:"checkOutDate,omitempty"`
	HotelName    string     `json:"hotelName,omitempty"`

	ProviderCost Money  `json:"providerCost"`
	ConsumerCost Money  `json:"consumerCost"`
	Profit       Money  `json:"profit"`
	ProviderFee  *Money `json:"providerFee,omitempty"`
	ConsumerFee  *Money `json:"consumerFee,omitempty"`

	// OriginalTicket links a re-issue to the ticket it replaces.
	OriginalTicket Ref `json:"originalTicket,omitempty"`
}

// IsDirectCustomer reports whether the ticket was sold without an agent and is
// therefore ledgered under its own identity.
func (t *Ticket) IsDirectCustomer() bool {
	return t.Agent == ""
}

// TicketFilter narrows the ticket list.
type TicketFilter struct {
	ListParams
	MinDate   string `form:"minDate" json:"minDate,omitempty"`
	MaxDate   string `form:"maxDate" json:"maxDate,omitempty"`
	MinAmount string `form:"minAmount" json:"minAmount,omitempty"`
	MaxAmount string `form:"maxAmount" json:"maxAmount,omitempty"`
	Agent     string `form:"agent" json:"agent,omitempty"`
	Provider  string `form:"provider" json:"provider,omitempty"`
	Airline   string `form:"airline" json:"airline,omitempty"`
}

func (f TicketFilter) Values() url.Values {
	values := f.ListParams.Values()
	for key, value := range map[string]string{
		"minDate":   f.MinDate,
		"maxDate":   f.MaxDate,
		"minAmount": f.MinAmount,
		"maxAmount": f.MaxAmount,
		"agent":     f.Agent,
		"provider":  f.Provider,
		"airline":   f.Airline,
	} {
		if value != "" {
			values.Set(key, value)
		}
	}
	return values
}
