package models

import (
	"github.com/myrjola/cluedo/internal/errors"
	"log/slog"
	"strings"
)

var ErrInvalidCatalog = errors.NewSentinel("invalid catalog")

// Category is one of the independent axes of the mystery.
type Category string

const (
	CategoryLocation  Category = "location"
	CategoryTool      Category = "tool"
	CategoryCharacter Category = "character"
)

// Categories lists the categories in the order solutions are drawn and clues are built.
var Categories = []Category{CategoryLocation, CategoryTool, CategoryCharacter}

// Catalog holds the valid values of each category. It is fixed for the lifetime of a session.
type Catalog struct {
	Locations  []string `mapstructure:"locations"`
	Tools      []string `mapstructure:"tools"`
	Characters []string `mapstructure:"characters"`
}

// DefaultCatalog returns the classic board.
func DefaultCatalog() Catalog {
	return Catalog{
		Locations: []string{
			"Kitchen", "Ballroom", "Conservatory", "Dining Room", "Billiard Room",
			"Library", "Lounge", "Hall", "Study",
		},
		Tools: []string{"Candlestick", "Dagger", "Lead Pipe", "Revolver", "Rope", "Wrench"},
		Characters: []string{
			"Miss Scarlet", "Colonel Mustard", "Mrs. White", "Mr. Green", "Mrs. Peacock", "Professor Plum",
		},
	}
}

// Values returns the values of category. Unknown categories have no values.
func (c Catalog) Values(category Category) []string {
	switch category {
	case CategoryLocation:
		return c.Locations
	case CategoryTool:
		return c.Tools
	case CategoryCharacter:
		return c.Characters
	}
	return nil
}

// Contains reports whether value is exactly one of the values of category.
func (c Catalog) Contains(category Category, value string) bool {
	for _, v := range c.Values(category) {
		if v == value {
			return true
		}
	}
	return false
}

// Lookup finds the canonical value of category matching input, ignoring case and surrounding whitespace.
func (c Catalog) Lookup(category Category, input string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, v := range c.Values(category) {
		if strings.EqualFold(v, input) {
			return v, true
		}
	}
	return "", false
}

// Clues returns every value of the catalog as a clue, category by category.
func (c Catalog) Clues() []Clue {
	clues := make([]Clue, 0, len(c.Locations)+len(c.Tools)+len(c.Characters))
	for _, category := range Categories {
		for _, v := range c.Values(category) {
			clues = append(clues, Clue{Category: category, Value: v})
		}
	}
	return clues
}

// Validate checks that every category has values, no value is blank and no value appears twice.
// Values must be unique across categories so that a clue value identifies its category.
func (c Catalog) Validate() error {
	var (
		errorList []error
		seen      = map[string]Category{}
	)
	for _, category := range Categories {
		values := c.Values(category)
		if len(values) == 0 {
			errorList = append(errorList, errors.Wrap(ErrInvalidCatalog, "category has no values",
				slog.String("category", string(category))))
			continue
		}
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				errorList = append(errorList, errors.Wrap(ErrInvalidCatalog, "blank value",
					slog.String("category", string(category))))
				continue
			}
			key := strings.ToLower(v)
			if other, ok := seen[key]; ok {
				errorList = append(errorList, errors.Wrap(ErrInvalidCatalog, "duplicate value",
					slog.String("value", v),
					slog.String("category", string(category)),
					slog.String("firstCategory", string(other)),
				))
				continue
			}
			seen[key] = category
		}
	}
	return errors.Join(errorList...)
}
