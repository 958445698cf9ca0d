package model

// LedgerSnapshot is a consistent point-in-time view of the ledger handed to
// the engine. Callers must not hand the engine a snapshot assembled across
// concurrent ledger writes.
type LedgerSnapshot struct {
	CategoryRemaining      map[Category]float64
	MonthlyBudget          float64
	CurrentMonthlySpending float64
	MonthlyBudgetRemaining float64
	TodaySpending          float64
	DaysRemainingInMonth   int
	TotalDaysInMonth       int
}

// CategoryBudgetRemaining returns what is left of a category's allocation.
func (s LedgerSnapshot) CategoryBudgetRemaining(c Category) float64 {
	if s.CategoryRemaining == nil {
		return 0
	}
	return s.CategoryRemaining[c]
}

// OtherCategoryRemainders returns the remaining amounts of every category
// except the given one, used to size reallocation suggestions.
func (s LedgerSnapshot) OtherCategoryRemainders(except Category) []float64 {
	remainders := make([]float64, 0, len(s.CategoryRemaining))
	for _, c := range AllCategories() {
		if c == except {
			continue
		}
		if amount, ok := s.CategoryRemaining[c]; ok {
			remainders = append(remainders, amount)
		}
	}
	return remainders
}
