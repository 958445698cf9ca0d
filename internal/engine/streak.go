package engine

import (
	"time"

	"github.com/worthit/worthit/internal/model"
)

// StreakTracker advances the days-within-budget streak. The state machine
// is triggered by comparing dates on access rather than by a timer: callers
// invoke Advance whenever a transaction commits or on first access each
// day, and it no-ops within a single calendar day.
type StreakTracker struct{}

// NewStreakTracker creates a new StreakTracker.
func NewStreakTracker() *StreakTracker {
	return &StreakTracker{}
}

// Advance runs one streak transition for "today" and returns the updated
// streak. Idempotent within a calendar day. Yesterday's compliance is read
// from history; a missing record counts as non-compliant and resets the
// streak. History older than the retention window is pruned first, and
// today's compliance is recorded as a snapshot of the ledger at call time.
func (t *StreakTracker) Advance(streak model.SpendingStreak, today time.Time, snapshot model.LedgerSnapshot) model.SpendingStreak {
	if streak.CheckedOn(today) {
		return streak
	}

	updated := streak
	updated.DailyBudgetHistory = pruneHistory(streak.DailyBudgetHistory, today)

	yesterday := today.AddDate(0, 0, -1)
	if updated.DailyBudgetHistory[model.DayKey(yesterday)] {
		updated.CurrentStreak++
		if updated.CurrentStreak > updated.LongestStreak {
			updated.LongestStreak = updated.CurrentStreak
		}
	} else {
		updated.CurrentStreak = 0
	}

	updated.DailyBudgetHistory[model.DayKey(today)] = t.IsWithinDailyBudget(snapshot)
	updated.LastCheckDate = today

	return updated
}

// IsWithinDailyBudget reports whether today's spending stays within the
// pro-rated daily allowance. Exposed independently of Advance so callers
// can render live status.
func (t *StreakTracker) IsWithinDailyBudget(snapshot model.LedgerSnapshot) bool {
	daysRemaining := snapshot.DaysRemainingInMonth
	if daysRemaining < 1 {
		daysRemaining = 1
	}

	allowance := (snapshot.MonthlyBudget - snapshot.CurrentMonthlySpending) / float64(daysRemaining)
	return snapshot.TodaySpending <= allowance
}

// pruneHistory drops entries older than the retention window relative to
// today. Always returns a fresh map so the input streak stays untouched.
func pruneHistory(history map[string]bool, today time.Time) map[string]bool {
	cutoff := model.DayKey(today.AddDate(0, 0, -model.HistoryRetentionDays))

	pruned := make(map[string]bool, len(history))
	for key, withinBudget := range history {
		if key >= cutoff {
			pruned[key] = withinBudget
		}
	}
	return pruned
}
