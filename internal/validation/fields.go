package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04"}

// form reads loosely typed values out of a submitted field map and collects
// every failure instead of stopping at the first one.
type form struct {
	raw    map[string]any
	errors Errors
}

func newForm(raw map[string]any) *form {
	if raw == nil {
		raw = map[string]any{}
	}
	return &form{raw: raw}
}

func (f *form) text(field string) string {
	switch v := f.raw[field].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func (f *form) requiredText(field string) string {
	value := f.text(field)
	if value == "" {
		f.errors.add(field, label(field)+" is required.")
	}
	return value
}

// date returns nil for empty or unparseable values.
func (f *form) date(field string) *time.Time {
	switch v := f.raw[field].(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		return v
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}

func (f *form) requiredDate(field string) time.Time {
	t := f.date(field)
	if t == nil {
		f.errors.add(field, label(field)+" is required.")
		return time.Time{}
	}
	return *t
}

// amount parses a non-negative number. Zero is a present value.
func (f *form) amount(field string) (decimal.Decimal, bool) {
	var (
		value decimal.Decimal
		err   error
	)
	switch v := f.raw[field].(type) {
	case nil:
		return decimal.Zero, false
	case json.Number:
		value, err = decimal.NewFromString(v.String())
	case float64:
		value = decimal.NewFromFloat(v)
	case float32:
		value = decimal.NewFromFloat32(v)
	case int:
		value = decimal.NewFromInt(int64(v))
	case int64:
		value = decimal.NewFromInt(v)
	case decimal.Decimal:
		value = v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Zero, false
		}
		value, err = decimal.NewFromString(s)
	default:
		err = fmt.Errorf("unsupported type %T", v)
	}
	if err != nil {
		f.errors.add(field, label(field)+" must be a number.")
		return decimal.Zero, false
	}
	if value.IsNegative() {
		f.errors.add(field, label(field)+" must be 0 or greater.")
		return decimal.Zero, false
	}
	return value, true
}

func (f *form) requiredAmount(field string) decimal.Decimal {
	if f.raw[field] == nil || f.text(field) == "" {
		f.errors.add(field, label(field)+" is required.")
		return decimal.Zero
	}
	value, _ := f.amount(field)
	return value
}

var labels = map[string]string{
	"pnr":      "PNR",
	"cf":       "Tax code",
	"id":       "ID",
	"entityId": "Ledger",
	"isActive": "Status",
}

// label turns a camelCase field name into a sentence-case label.
func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
