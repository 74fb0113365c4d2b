// Package catalog loads the fixed category lists offered for each
// transaction type.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/Veraticus/markbucks/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultCatalog []byte

// Default returns the built-in catalog.
func Default() model.Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded category catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes and validates a YAML catalog with "income" and "expense" lists.
func Parse(data []byte) (model.Catalog, error) {
	var c model.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return model.Catalog{}, fmt.Errorf("failed to parse category catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return model.Catalog{}, err
	}
	return c, nil
}

// WithOverrides replaces the lists of base with any non-empty override.
func WithOverrides(base model.Catalog, income, expense []string) (model.Catalog, error) {
	c := model.Catalog{
		Income:  slices.Clone(base.Income),
		Expense: slices.Clone(base.Expense),
	}
	if len(income) > 0 {
		c.Income = slices.Clone(income)
	}
	if len(expense) > 0 {
		c.Expense = slices.Clone(expense)
	}
	if err := c.Validate(); err != nil {
		return model.Catalog{}, fmt.Errorf("invalid category override: %w", err)
	}
	return c, nil
}
