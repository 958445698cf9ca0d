// Package ledger resolves point-in-time snapshots of the budget ledger for
// the decision engine.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/worthit/worthit/internal/model"
	"github.com/worthit/worthit/internal/service"
)

// Resolver composes store reads into consistent ledger snapshots.
type Resolver struct {
	store service.Store
}

// NewResolver creates a new Resolver backed by the given store.
func NewResolver(store service.Store) *Resolver {
	return &Resolver{store: store}
}

// Snapshot materializes the ledger view for the month containing now.
// Requires a budget to be configured for that month.
func (r *Resolver) Snapshot(ctx context.Context, now time.Time) (model.LedgerSnapshot, error) {
	budget, err := r.store.GetBudget(ctx, now.Month(), now.Year())
	if err != nil {
		return model.LedgerSnapshot{}, fmt.Errorf("failed to resolve budget: %w", err)
	}

	summary, err := r.store.GetMonthSummary(ctx, now.Month(), now.Year())
	if err != nil {
		return model.LedgerSnapshot{}, fmt.Errorf("failed to resolve month summary: %w", err)
	}

	todaySpending, err := r.store.GetDaySpending(ctx, now)
	if err != nil {
		return model.LedgerSnapshot{}, fmt.Errorf("failed to resolve today's spending: %w", err)
	}

	return BuildSnapshot(budget, summary, todaySpending, now), nil
}

// BuildSnapshot derives a snapshot from already-loaded state. Pure; split
// out from Snapshot so it can be exercised without a store.
func BuildSnapshot(budget *model.Budget, summary *service.MonthSummary, todaySpending float64, now time.Time) model.LedgerSnapshot {
	totalDays := DaysInMonth(now)
	daysRemaining := totalDays - now.Day() + 1
	if daysRemaining < 1 {
		daysRemaining = 1
	}

	categoryRemaining := make(map[model.Category]float64, len(model.AllCategories()))
	for _, c := range model.AllCategories() {
		categoryRemaining[c] = budget.CategoryBudget(c) - summary.SpendingByCategory[c]
	}

	return model.LedgerSnapshot{
		CategoryRemaining:      categoryRemaining,
		MonthlyBudget:          budget.MonthlyBudget,
		CurrentMonthlySpending: summary.TotalSpending,
		MonthlyBudgetRemaining: budget.MonthlyBudget - summary.TotalSpending,
		TodaySpending:          todaySpending,
		DaysRemainingInMonth:   daysRemaining,
		TotalDaysInMonth:       totalDays,
	}
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
