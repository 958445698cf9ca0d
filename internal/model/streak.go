package model

import "time"

// HistoryRetentionDays is how long daily compliance records are kept.
const HistoryRetentionDays = 90

// SpendingStreak tracks consecutive days of staying within the pro-rated
// daily budget allowance. DailyBudgetHistory maps day keys ("2006-01-02")
// to whether that day's spending stayed within the allowance; entries older
// than HistoryRetentionDays are pruned on every advance.
type SpendingStreak struct {
	LastCheckDate      time.Time
	DailyBudgetHistory map[string]bool
	CurrentStreak      int
	LongestStreak      int
}

// NewSpendingStreak returns an empty streak with an initialized history map.
func NewSpendingStreak() SpendingStreak {
	return SpendingStreak{DailyBudgetHistory: make(map[string]bool)}
}

// DayKey formats a time as the canonical history key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CheckedOn reports whether the streak was already advanced on the given day.
func (s *SpendingStreak) CheckedOn(day time.Time) bool {
	if s.LastCheckDate.IsZero() {
		return false
	}
	y1, m1, d1 := s.LastCheckDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
