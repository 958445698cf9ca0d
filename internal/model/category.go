// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
)

// Category is a fixed expense classification for detected items and transactions.
type Category string

// The closed set of expense categories.
const (
	CategoryFood          Category = "Food"
	CategoryShopping      Category = "Shopping"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryOther         Category = "Other"
)

// PriceRange is the typical price band for items in a category.
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether a price falls inside the typical band.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// CategoryProfile holds the immutable per-category constants: the typical
// price range, the detection-confidence multiplier, the minimum confidence
// required to trust a detection, and the keyword list used to guess a
// category from an item label or statement description.
type CategoryProfile struct {
	Range         PriceRange
	Multiplier    float64
	MinConfidence float64
	Keywords      []string
}

var categoryProfiles = map[Category]CategoryProfile{
	CategoryFood: {
		Range:         PriceRange{Min: 2, Max: 150},
		Multiplier:    0.95,
		MinConfidence: 0.6,
		Keywords:      []string{"coffee", "restaurant", "grocery", "pizza", "burger", "cafe", "bakery", "snack", "lunch", "dinner"},
	},
	CategoryShopping: {
		Range:         PriceRange{Min: 5, Max: 2000},
		Multiplier:    0.9,
		MinConfidence: 0.65,
		Keywords:      []string{"shoes", "clothing", "shirt", "jacket", "electronics", "headphones", "laptop", "phone", "watch", "bag"},
	},
	CategoryTransport: {
		Range:         PriceRange{Min: 1, Max: 500},
		Multiplier:    0.85,
		MinConfidence: 0.6,
		Keywords:      []string{"fuel", "gas", "taxi", "uber", "bus", "train", "parking", "ticket", "metro"},
	},
	CategoryEntertainment: {
		Range:         PriceRange{Min: 5, Max: 300},
		Multiplier:    0.85,
		MinConfidence: 0.6,
		Keywords:      []string{"cinema", "movie", "concert", "game", "museum", "streaming", "theater", "bowling"},
	},
	CategoryBills: {
		Range:         PriceRange{Min: 10, Max: 1500},
		Multiplier:    0.9,
		MinConfidence: 0.7,
		Keywords:      []string{"electricity", "water", "internet", "rent", "insurance", "subscription", "utility", "phone bill"},
	},
	CategoryOther: {
		Range:         PriceRange{Min: 1, Max: 5000},
		Multiplier:    0.7,
		MinConfidence: 0.5,
		Keywords:      nil,
	},
}

// AllCategories returns every category in a stable display order.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryShopping,
		CategoryTransport,
		CategoryEntertainment,
		CategoryBills,
		CategoryOther,
	}
}

// Profile returns the immutable constants for the category. Unknown
// categories fall back to the Other profile.
func (c Category) Profile() CategoryProfile {
	if p, ok := categoryProfiles[c]; ok {
		return p
	}
	return categoryProfiles[CategoryOther]
}

// Valid reports whether the category is one of the closed set.
func (c Category) Valid() bool {
	_, ok := categoryProfiles[c]
	return ok
}

// ParseCategory converts a user-supplied string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", s, joinCategories())
}

func joinCategories() string {
	names := make([]string, 0, len(categoryProfiles))
	for _, c := range AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
