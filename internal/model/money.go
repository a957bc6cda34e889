package model

import "github.com/shopspring/decimal"

func init() {
	// the travel backend expects amounts as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Money is an exact monetary amount.
type Money = decimal.Decimal

func NewMoney(v float64) Money {
	return decimal.NewFromFloat(v)
}
