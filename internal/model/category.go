package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	// TypeIncome represents money entering the user's accounts.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money leaving the user's accounts.
	TypeExpense TransactionType = "expense"
)

// ErrUnknownType is returned when a string does not name a transaction type.
var ErrUnknownType = errors.New("unknown transaction type")

// ParseTransactionType converts user input into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Toggle returns the opposite transaction type.
func (t TransactionType) Toggle() TransactionType {
	if t == TypeIncome {
		return TypeExpense
	}
	return TypeIncome
}

// Catalog holds the fixed, ordered category names for each transaction type.
type Catalog struct {
	Income  []string `yaml:"income"`
	Expense []string `yaml:"expense"`
}

// For returns the ordered categories for a transaction type. The returned
// slice is a copy.
func (c Catalog) For(t TransactionType) []string {
	switch t {
	case TypeIncome:
		return slices.Clone(c.Income)
	case TypeExpense:
		return slices.Clone(c.Expense)
	default:
		return nil
	}
}

// Contains reports whether category belongs to the list for t.
func (c Catalog) Contains(t TransactionType, category string) bool {
	switch t {
	case TypeIncome:
		return slices.Contains(c.Income, category)
	case TypeExpense:
		return slices.Contains(c.Expense, category)
	default:
		return false
	}
}

// Validate ensures both lists are non-empty and free of blank or duplicate names.
func (c Catalog) Validate() error {
	for _, t := range []TransactionType{TypeExpense, TypeIncome} {
		names := c.For(t)
		if len(names) == 0 {
			return fmt.Errorf("catalog has no %s categories", t)
		}
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("catalog has a blank %s category", t)
			}
			if seen[name] {
				return fmt.Errorf("catalog has duplicate %s category %q", t, name)
			}
			seen[name] = true
		}
	}
	return nil
}
