package ledger

import (
	"testing"
	"time"

	"github.com/worthit/worthit/internal/model"
	"github.com/worthit/worthit/internal/service"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC), 30},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.date); got != tt.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tt.date.Format("2006-01"), got, tt.want)
		}
	}
}

func TestBuildSnapshot(t *testing.T) {
	budget := &model.Budget{
		MonthlyBudget: 2000,
		CategoryBudgets: map[model.Category]float64{
			model.CategoryFood:      400,
			model.CategoryTransport: 150,
		},
		CurrentMonth: time.August,
		CurrentYear:  2026,
	}
	summary := &service.MonthSummary{
		TotalSpending: 600,
		SpendingByCategory: map[model.Category]float64{
			model.CategoryFood:     250,
			model.CategoryShopping: 350,
		},
	}

	// August 20th: 31-day month, 12 days remaining including today.
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	snap := BuildSnapshot(budget, summary, 42.50, now)

	if snap.TotalDaysInMonth != 31 {
		t.Errorf("totalDays = %d, want 31", snap.TotalDaysInMonth)
	}
	if snap.DaysRemainingInMonth != 12 {
		t.Errorf("daysRemaining = %d, want 12", snap.DaysRemainingInMonth)
	}
	if snap.MonthlyBudgetRemaining != 1400 {
		t.Errorf("monthlyRemaining = %.2f, want 1400", snap.MonthlyBudgetRemaining)
	}
	if snap.TodaySpending != 42.50 {
		t.Errorf("todaySpending = %.2f, want 42.50", snap.TodaySpending)
	}

	if got := snap.CategoryBudgetRemaining(model.CategoryFood); got != 150 {
		t.Errorf("food remaining = %.2f, want 150", got)
	}
	// Shopping has spend but no allocation: remainder goes negative.
	if got := snap.CategoryBudgetRemaining(model.CategoryShopping); got != -350 {
		t.Errorf("shopping remaining = %.2f, want -350", got)
	}
	if got := snap.CategoryBudgetRemaining(model.CategoryBills); got != 0 {
		t.Errorf("bills remaining = %.2f, want 0", got)
	}
}

func TestBuildSnapshot_LastDayOfMonth(t *testing.T) {
	budget := &model.Budget{MonthlyBudget: 1000, CurrentMonth: time.April, CurrentYear: 2026}
	summary := &service.MonthSummary{SpendingByCategory: map[model.Category]float64{}}

	now := time.Date(2026, time.April, 30, 23, 0, 0, 0, time.UTC)
	snap := BuildSnapshot(budget, summary, 0, now)

	if snap.DaysRemainingInMonth != 1 {
		t.Errorf("daysRemaining = %d, want 1 on the last day", snap.DaysRemainingInMonth)
	}
}

func TestSnapshot_OtherCategoryRemainders(t *testing.T) {
	snap := model.LedgerSnapshot{
		CategoryRemaining: map[model.Category]float64{
			model.CategoryFood:      100,
			model.CategoryShopping:  -20,
			model.CategoryTransport: 50,
		},
	}

	others := snap.OtherCategoryRemainders(model.CategoryFood)

	if len(others) != 2 {
		t.Fatalf("got %d remainders, want 2", len(others))
	}
	// Negative remainders are included here; the recommender filters them.
	sum := 0.0
	for _, v := range others {
		sum += v
	}
	if sum != 30 {
		t.Errorf("sum = %.2f, want 30", sum)
	}
}
