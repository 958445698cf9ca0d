package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/worthit/worthit/internal/model"
)

// GetStreak loads the streak state. A database with no streak row yields a
// fresh zero streak rather than an error.
func (s *SQLiteStore) GetStreak(ctx context.Context) (*model.SpendingStreak, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		streak      model.SpendingStreak
		lastCheck   sql.NullTime
		historyJSON string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT current_streak, longest_streak, last_check_date, history
		FROM streaks WHERE id = 1
	`).Scan(&streak.CurrentStreak, &streak.LongestStreak, &lastCheck, &historyJSON)
	if errors.Is(err, sql.ErrNoRows) {
		fresh := model.NewSpendingStreak()
		return &fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	if lastCheck.Valid {
		streak.LastCheckDate = lastCheck.Time
	}

	streak.DailyBudgetHistory = make(map[string]bool)
	if err := json.Unmarshal([]byte(historyJSON), &streak.DailyBudgetHistory); err != nil {
		return nil, fmt.Errorf("failed to decode streak history: %w", err)
	}

	return &streak, nil
}

// SaveStreak upserts the single streak row.
func (s *SQLiteStore) SaveStreak(ctx context.Context, streak *model.SpendingStreak) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if streak == nil {
		return fmt.Errorf("%w: streak", ErrNilParameter)
	}

	historyJSON, err := json.Marshal(streak.DailyBudgetHistory)
	if err != nil {
		return fmt.Errorf("failed to encode streak history: %w", err)
	}

	var lastCheck any
	if !streak.LastCheckDate.IsZero() {
		lastCheck = streak.LastCheckDate
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO streaks (id, current_streak, longest_streak, last_check_date, history, updated_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			last_check_date = excluded.last_check_date,
			history = excluded.history,
			updated_at = CURRENT_TIMESTAMP
	`, streak.CurrentStreak, streak.LongestStreak, lastCheck, string(historyJSON))
	if err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}

	return nil
}
