package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/worthit/worthit/internal/common"
	"github.com/worthit/worthit/internal/model"
	"github.com/worthit/worthit/internal/service"
)

// SaveTransaction persists a single transaction. The ID is derived from
// the content hash when unset.
func (s *SQLiteStore) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	if txn.ID == "" {
		txn.ID = txn.GenerateID()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO transactions (id, date, amount, category, income_category, is_income, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, txn.ID, txn.Date, txn.Amount, nullableString(string(txn.Category)), nullableString(txn.IncomeCategory), txn.IsIncome, txn.Note)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return common.ErrDuplicateEntry
	}

	return nil
}

// SaveTransactions persists a batch inside one database transaction,
// skipping duplicates. Returns the number of newly inserted rows.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, txns []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (id, date, amount, category, income_category, is_income, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range txns {
		txn := &txns[i]
		if err := validateTransaction(txn); err != nil {
			return 0, fmt.Errorf("transaction at index %d: %w", i, err)
		}
		if txn.ID == "" {
			txn.ID = txn.GenerateID()
		}

		res, err := stmt.ExecContext(ctx, txn.ID, txn.Date, txn.Amount,
			nullableString(string(txn.Category)), nullableString(txn.IncomeCategory), txn.IsIncome, txn.Note)
		if err != nil {
			return 0, fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
		}
		if rows, err := res.RowsAffected(); err == nil && rows > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transactions: %w", err)
	}

	return inserted, nil
}

// GetTransactions returns transactions matching the filter, newest first.
func (s *SQLiteStore) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, date, amount, category, income_category, is_income, note FROM transactions WHERE 1=1`
	var args []any

	if filter.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += " AND date < ?"
		args = append(args, *filter.EndDate)
	}
	if filter.Category != nil {
		query += " AND category = ?"
		args = append(args, string(*filter.Category))
	}

	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var (
			txn            model.Transaction
			category       sql.NullString
			incomeCategory sql.NullString
		)
		if err := rows.Scan(&txn.ID, &txn.Date, &txn.Amount, &category, &incomeCategory, &txn.IsIncome, &txn.Note); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Category = model.Category(category.String)
		txn.IncomeCategory = incomeCategory.String
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

// DeleteTransaction removes a transaction by ID. Model transactions are
// immutable, so an edit is a delete followed by a re-add.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion: %w", err)
	}
	if rows == 0 {
		return common.ErrNotFound
	}

	return nil
}

// GetMonthSummary aggregates recorded spending for one calendar month.
func (s *SQLiteStore) GetMonthSummary(ctx context.Context, month time.Month, year int) (*service.MonthSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, category, is_income FROM transactions
		WHERE date >= ? AND date < ?
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query month summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := &service.MonthSummary{
		SpendingByCategory: make(map[model.Category]float64),
	}

	for rows.Next() {
		var (
			amount   float64
			category sql.NullString
			isIncome bool
		)
		if err := rows.Scan(&amount, &category, &isIncome); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}

		summary.TransactionCount++
		if isIncome {
			summary.TotalIncome += amount
			continue
		}

		summary.TotalSpending += amount
		summary.SpendingByCategory[model.Category(category.String)] += amount
	}

	return summary, rows.Err()
}

// GetDaySpending totals expense amounts recorded on one calendar day.
func (s *SQLiteStore) GetDaySpending(ctx context.Context, day time.Time) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)

	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT SUM(amount) FROM transactions
		WHERE date >= ? AND date < ? AND is_income = 0
	`, start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to query day spending: %w", err)
	}

	return total.Float64, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
