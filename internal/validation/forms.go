package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"travel-backoffice/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct runs the `validate` tags of s and converts failures into Errors.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	var errs Errors
	for _, fe := range fieldErrors {
		errs.add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	name := strings.SplitN(fe.Field(), "[", 2)[0]
	l := label(name)
	switch fe.Tag() {
	case "required":
		return l + " is required."
	case "email":
		return "Invalid email address."
	case "oneof":
		return fmt.Sprintf("Invalid %s selected.", strings.ToLower(l))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", l, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least %s %s.", fe.Param(), strings.ToLower(l))
		}
		return fmt.Sprintf("%s must be at least %s characters long.", l, fe.Param())
	}
	return l + " is invalid."
}

var userFieldOrder = []string{"name", "username", "password", "role", "isActive", "permissions"}

// ValidateUser checks the user form. On update an empty password keeps the
// current one.
func ValidateUser(in *model.UserInput, update bool) error {
	var errs Errors
	if err := Struct(in); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}
	passwordLen := utf8.RuneCountInString(in.Password)
	if (!update || passwordLen > 0) && passwordLen < 6 {
		errs.add("password", "Password must be at least 6 characters long.")
	}
	errs.sortBy(userFieldOrder)
	return errs.Err()
}

func ValidateParty(in *model.PartyInput) error {
	return Struct(in)
}

func ValidatePaymentMethod(in *model.PaymentMethodInput) error {
	return Struct(in)
}

func ValidateLogin(in *model.LoginInput) error {
	return Struct(in)
}

var paymentFieldOrder = []string{"entityId", "entityType", "amount", "paymentMethod", "paymentDate"}

// ValidatePayment checks the payment form and returns the normalized payment.
func ValidatePayment(in *model.PaymentInput) (*model.Payment, error) {
	var errs Errors
	if err := Struct(in); err != nil {
		if !errors.As(err, &errs) {
			return nil, err
		}
	}
	f := newForm(map[string]any{"paymentDate": in.PaymentDate})
	paymentDate := f.date("paymentDate")
	if paymentDate == nil && !errs.Has("paymentDate") {
		errs.add("paymentDate", "Payment date is required.")
	}
	errs.sortBy(paymentFieldOrder)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &model.Payment{
		EntityID:      strings.TrimSpace(in.EntityID),
		EntityType:    in.EntityType,
		Amount:        decimal.NewFromFloat(in.Amount),
		PaymentMethod: in.PaymentMethod,
		PaymentDate:   paymentDate.In(time.UTC),
		Reference:     in.Reference,
		Description:   in.Description,
	}, nil
}

// Field reports a single-field failure found outside the form itself, such as
// a payment for an entity that has no ledger.
func Field(field, message string) error {
	return Errors{{Field: field, Message: message}}
}
