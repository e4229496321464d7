// Package types provides type definitions for structured data used throughout the staffsync system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Category is the closed-set role classification shared by candidate
// profiles and employer requirements.
type Category string

// Category values mirror the classification enum used by the Gemini
// collaborator schemas and the UI filter keys.
const (
	CategoryHouseHelp Category = "House Help"
	CategoryGardener  Category = "Gardener"
	CategoryCook      Category = "Cook"
	CategoryDriver    Category = "Driver"
	CategoryNanny     Category = "Nanny"
)

// Categories returns every valid category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryHouseHelp,
		CategoryGardener,
		CategoryCook,
		CategoryDriver,
		CategoryNanny,
	}
}

// CategoryNames returns the category labels as plain strings, for use in
// prompt construction and schema enums.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// ParseCategory converts a raw string to a Category, returning an error for
// unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryHouseHelp, CategoryGardener, CategoryCook, CategoryDriver, CategoryNanny:
		return c, nil
	}
	return "", fmt.Errorf("unknown helper category %q", s)
}

// IsValid reports whether c is one of the closed set of categories.
func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}
