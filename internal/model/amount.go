package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount validation errors.
var (
	ErrBlankAmount   = errors.New("amount is blank")
	ErrInvalidAmount = errors.New("amount is not a positive decimal")
)

// Exponent bounds accepted for an amount.
const (
	minExponent = -18
	maxExponent = 18
)

// Amount is a strictly positive decimal that remembers the scale it was
// entered with, so "12.50" is written back as "12.50".
type Amount struct {
	value decimal.Decimal
}

// ParseAmount parses user input. Surrounding whitespace is ignored.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, ErrBlankAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}

	return NewAmount(d)
}

// NewAmount wraps an existing decimal. Non-positive values and values
// outside the supported exponent range are rejected.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, ErrInvalidAmount
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: d}, nil
}

// Decimal returns the underlying value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsZero reports whether the amount was never set.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// String renders the amount unquoted, keeping the entered number of decimals.
func (a Amount) String() string {
	places := -a.value.Exponent()
	if places < 0 {
		places = 0
	}
	return a.value.StringFixed(places)
}
