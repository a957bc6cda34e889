package validation

import (
	"regexp"
	"time"

	"travel-backoffice/internal/model"

	"github.com/shopspring/decimal"
)

// ticketNumberPattern is a three character airline code followed by a 10 or 13
// digit serial, giving 13 or 16 characters in total.
var ticketNumberPattern = regexp.MustCompile(`^[0-9A-Za-z]{3}(\d{10}|\d{13})$`)

// Ticket is a validated ticket submission. Exactly one itinerary is set,
// chosen by the operation type.
type Ticket struct {
	Common    Common
	Itinerary Itinerary
	Fees      *Fees
}

type Common struct {
	OperationType model.OperationType
	Provider      string
	Agent         string
	PaymentType   model.PaymentType
}

type Costs struct {
	ProviderCost decimal.Decimal
	ConsumerCost decimal.Decimal
}

// Profit is always derived; a submitted profit value is never trusted.
func (c Costs) Profit() decimal.Decimal {
	return c.ConsumerCost.Sub(c.ProviderCost)
}

// Itinerary is either a *Flight or a *Stay.
type Itinerary interface {
	Costs() Costs
	apply(t *model.Ticket)
}

type Flight struct {
	AirlineCode               string
	TicketNumberWithoutPrefix string
	PassengerName             string
	IssueDate                 time.Time
	DepartureDate             time.Time
	ReturnDate                time.Time
	Departure                 string
	Destination               string
	PNR                       string
	ClientPaymentMethod       string
	PaymentToProvider         string
	Segment                   string
	Cost                      Costs
}

func (f *Flight) TicketNumber() string {
	return f.AirlineCode + f.TicketNumberWithoutPrefix
}

func (f *Flight) Costs() Costs { return f.Cost }

func (f *Flight) apply(t *model.Ticket) {
	t.AirlineCode = f.AirlineCode
	t.TicketNumberWithoutPrefix = f.TicketNumberWithoutPrefix
	t.TicketNumber = f.TicketNumber()
	t.PassengerName = f.PassengerName
	t.IssueDate = timePtr(f.IssueDate)
	t.DepartureDate = timePtr(f.DepartureDate)
	t.ReturnDate = timePtr(f.ReturnDate)
	t.Departure = f.Departure
	t.Destination = f.Destination
	t.PNR = f.PNR
	t.ClientPaymentMethod = f.ClientPaymentMethod
	t.PaymentToProvider = f.PaymentToProvider
	t.Segment = f.Segment
}

// Stay covers Hotel and Umrah bookings.
type Stay struct {
	CheckInDate  time.Time
	CheckOutDate time.Time
	HotelName    string
	Cost         Costs
}

func (s *Stay) Costs() Costs { return s.Cost }

func (s *Stay) apply(t *model.Ticket) {
	t.CheckInDate = timePtr(s.CheckInDate)
	t.CheckOutDate = timePtr(s.CheckOutDate)
	t.HotelName = s.HotelName
}

type Fees struct {
	ProviderFee decimal.Decimal
	ConsumerFee decimal.Decimal
}

func (t *Ticket) Profit() decimal.Decimal {
	return t.Itinerary.Costs().Profit()
}

// Record flattens the ticket into the shape the backend stores.
func (t *Ticket) Record() model.Ticket {
	costs := t.Itinerary.Costs()
	record := model.Ticket{
		OperationType: t.Common.OperationType,
		Provider:      model.Ref(t.Common.Provider),
		Agent:         model.Ref(t.Common.Agent),
		PaymentType:   t.Common.PaymentType,
		ProviderCost:  costs.ProviderCost,
		ConsumerCost:  costs.ConsumerCost,
		Profit:        costs.Profit(),
	}
	t.Itinerary.apply(&record)
	if t.Fees != nil {
		providerFee, consumerFee := t.Fees.ProviderFee, t.Fees.ConsumerFee
		record.ProviderFee = &providerFee
		record.ConsumerFee = &consumerFee
	}
	return record
}

// ValidateTicket checks a raw ticket submission. The returned error is an
// Errors value listing every failing field.
func ValidateTicket(raw map[string]any) (*Ticket, error) {
	f := newForm(raw)

	operation := model.OperationType(f.requiredText("operationType"))
	if operation != "" && !operation.IsValid() {
		f.errors.add("operationType", "Invalid operation type selected.")
	}
	common := Common{
		OperationType: operation,
		Provider:      f.requiredText("provider"),
		Agent:         f.text("agent"),
		PaymentType:   model.PaymentType(f.requiredText("paymentType")),
	}
	if common.PaymentType != "" && !common.PaymentType.IsValid() {
		f.errors.add("paymentType", "Invalid payment type selected.")
	}

	ticket := &Ticket{Common: common}
	if operation.IsStay() {
		ticket.Itinerary = readStay(f)
	} else {
		ticket.Itinerary = readFlight(f)
	}
	if operation.ChargesFees() {
		ticket.Fees = &Fees{
			ProviderFee: f.requiredAmount("providerFee"),
			ConsumerFee: f.requiredAmount("consumerFee"),
		}
	}

	if err := f.errors.Err(); err != nil {
		return nil, err
	}
	return ticket, nil
}

func readFlight(f *form) *Flight {
	flight := &Flight{
		AirlineCode:               f.requiredText("airlineCode"),
		TicketNumberWithoutPrefix: f.requiredText("ticketNumberWithoutPrefix"),
	}

	// the submitted ticketNumber is ignored; it is always rebuilt from its parts
	if number := flight.TicketNumber(); number == "" {
		f.errors.add("ticketNumber", "Ticket number is required.")
	} else if !ticketNumberPattern.MatchString(number) {
		f.errors.add("ticketNumber", "Ticket number must be 13 or 16 characters: airline code followed by digits.")
	}

	flight.PassengerName = f.requiredText("passengerName")
	flight.IssueDate = f.requiredDate("issueDate")
	flight.DepartureDate = f.requiredDate("departureDate")
	flight.ReturnDate = f.requiredDate("returnDate")
	flight.Departure = f.requiredText("departure")
	flight.Destination = f.requiredText("destination")
	flight.PNR = f.requiredText("pnr")
	flight.Cost = readCosts(f)
	flight.ClientPaymentMethod = f.requiredText("clientPaymentMethod")
	flight.PaymentToProvider = f.requiredText("paymentToProvider")
	flight.Segment = f.requiredText("segment")
	return flight
}

func readStay(f *form) *Stay {
	stay := &Stay{
		CheckInDate:  f.requiredDate("checkInDate"),
		CheckOutDate: f.requiredDate("checkOutDate"),
	}
	if !stay.CheckInDate.IsZero() && !stay.CheckOutDate.IsZero() && stay.CheckOutDate.Before(stay.CheckInDate) {
		f.errors.add("checkOutDate", "Check-out date cannot be before check-in date.")
	}
	stay.Cost = readCosts(f)
	stay.HotelName = f.requiredText("hotelName")
	return stay
}

// readCosts checks the submitted profit for presence and sign only. Its value
// is discarded: the stored profit is consumerCost minus providerCost and may
// be negative when a ticket is sold at a loss.
func readCosts(f *form) Costs {
	costs := Costs{
		ProviderCost: f.requiredAmount("providerCost"),
		ConsumerCost: f.requiredAmount("consumerCost"),
	}
	f.requiredAmount("profit")
	return costs
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
