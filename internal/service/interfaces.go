// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/worthit/worthit/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *model.Category
	Limit     int
}

// MonthSummary aggregates one month of recorded spending.
type MonthSummary struct {
	SpendingByCategory map[model.Category]float64
	TotalSpending      float64
	TotalIncome        float64
	TransactionCount   int
}

// Store defines the contract for the persistence layer.
type Store interface {
	// Budget operations
	SaveBudget(ctx context.Context, budget *model.Budget) error
	GetBudget(ctx context.Context, month time.Month, year int) (*model.Budget, error)

	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	SaveTransactions(ctx context.Context, txns []model.Transaction) (int, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	// Month aggregates
	GetMonthSummary(ctx context.Context, month time.Month, year int) (*MonthSummary, error)
	GetDaySpending(ctx context.Context, day time.Time) (float64, error)

	// Streak operations
	GetStreak(ctx context.Context) (*model.SpendingStreak, error)
	SaveStreak(ctx context.Context, streak *model.SpendingStreak) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
