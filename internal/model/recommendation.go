package model

import "sort"

// RecommendationType identifies the kind of actionable suggestion.
type RecommendationType string

// Recommendation type constants.
const (
	RecommendationSavingsPlan      RecommendationType = "SAVINGS_PLAN"
	RecommendationReallocation     RecommendationType = "BUDGET_REALLOCATION"
	RecommendationStreakProtection RecommendationType = "STREAK_PROTECTION"
	RecommendationOptimalTiming    RecommendationType = "OPTIMAL_TIMING"
	RecommendationVerifyConfidence RecommendationType = "VERIFY_CONFIDENCE"
)

// Priority orders recommendations from least to most urgent.
type Priority string

// Priority levels.
const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Rank returns the numeric ordering of a priority: Critical=4 down to Low=1.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Recommendation is a single actionable suggestion produced for a candidate
// purchase. The numeric fields are populated per type: savings plans carry
// the shortfall breakdown, reallocations the available sum.
type Recommendation struct {
	Type               RecommendationType
	Priority           Priority
	Title              string
	Detail             string
	DailySavingsNeeded float64
	DaysToSave         int
	AvailableToMove    float64
}

// Recommendations supports priority ordering over a suggestion list.
type Recommendations []Recommendation

// SortByPriority orders recommendations non-increasing by priority rank.
// The sort is stable: equal priorities keep their emission order.
func (r Recommendations) SortByPriority() {
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].Priority.Rank() > r[j].Priority.Rank()
	})
}
