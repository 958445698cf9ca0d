package model

import (
	"fmt"
	"time"
)

// Budget holds the monthly spending plan: an overall monthly total plus
// per-category allocations. Read-only to the engine; mutated only by
// explicit budget-edit operations.
type Budget struct {
	CategoryBudgets map[Category]float64
	MonthlyBudget   float64
	CurrentMonth    time.Month
	CurrentYear     int
}

// Validate ensures the Budget has valid data.
func (b *Budget) Validate() error {
	if b.MonthlyBudget <= 0 {
		return fmt.Errorf("monthly budget must be positive, got %.2f", b.MonthlyBudget)
	}

	if b.CurrentMonth < time.January || b.CurrentMonth > time.December {
		return fmt.Errorf("invalid month %d", b.CurrentMonth)
	}

	for cat, amount := range b.CategoryBudgets {
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q in category budgets", cat)
		}
		if amount < 0 {
			return fmt.Errorf("category budget for %s must be non-negative, got %.2f", cat, amount)
		}
	}

	return nil
}

// CategoryBudget returns the allocation for a category, zero when unset.
func (b *Budget) CategoryBudget(c Category) float64 {
	if b.CategoryBudgets == nil {
		return 0
	}
	return b.CategoryBudgets[c]
}
