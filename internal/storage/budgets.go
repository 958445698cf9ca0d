package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/worthit/worthit/internal/common"
	"github.com/worthit/worthit/internal/model"
)

// SaveBudget inserts or replaces the budget for its month and year.
func (s *SQLiteStore) SaveBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	categoryJSON, err := json.Marshal(budget.CategoryBudgets)
	if err != nil {
		return fmt.Errorf("failed to encode category budgets: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO budgets (month, year, monthly_budget, category_budgets, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(month, year) DO UPDATE SET
			monthly_budget = excluded.monthly_budget,
			category_budgets = excluded.category_budgets,
			updated_at = CURRENT_TIMESTAMP
	`, int(budget.CurrentMonth), budget.CurrentYear, budget.MonthlyBudget, string(categoryJSON))
	if err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}

	return nil
}

// GetBudget loads the budget for a month and year. Returns
// common.ErrNoBudget when none is configured.
func (s *SQLiteStore) GetBudget(ctx context.Context, month time.Month, year int) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		monthlyBudget float64
		categoryJSON  string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT monthly_budget, category_budgets FROM budgets
		WHERE month = ? AND year = ?
	`, int(month), year).Scan(&monthlyBudget, &categoryJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNoBudget
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	categoryBudgets := make(map[model.Category]float64)
	if err := json.Unmarshal([]byte(categoryJSON), &categoryBudgets); err != nil {
		return nil, fmt.Errorf("failed to decode category budgets: %w", err)
	}

	return &model.Budget{
		MonthlyBudget:   monthlyBudget,
		CategoryBudgets: categoryBudgets,
		CurrentMonth:    month,
		CurrentYear:     year,
	}, nil
}
