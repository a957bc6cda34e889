package validation

import (
	"slices"
	"strings"
)

// FieldError ties one failed rule to the field that broke it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is every failure found in one pass, in form order.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns nil for an empty set so callers can return it directly.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Has(field string) bool {
	return slices.ContainsFunc(e, func(fe FieldError) bool { return fe.Field == field })
}

// Fields lists the failing fields without duplicates.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		if !slices.Contains(fields, fe.Field) {
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

// Messages returns the messages recorded for one field.
func (e Errors) Messages(field string) []string {
	var messages []string
	for _, fe := range e {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// sortBy orders errors by the position of their field in order; unknown fields go last.
func (e Errors) sortBy(order []string) {
	rank := func(field string) int {
		if i := slices.Index(order, strings.SplitN(field, "[", 2)[0]); i >= 0 {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(e, func(a, b FieldError) int {
		return rank(a.Field) - rank(b.Field)
	})
}
