package model

// StreakRisk scores how much a purchase threatens the current streak.
type StreakRisk string

// Streak risk levels.
const (
	StreakRiskNone   StreakRisk = "NONE"
	StreakRiskLow    StreakRisk = "LOW"
	StreakRiskMedium StreakRisk = "MEDIUM"
	StreakRiskHigh   StreakRisk = "HIGH"
)

// UtilizationStatus classifies how much of the monthly budget is consumed.
type UtilizationStatus string

// Utilization statuses, ordered by consumption.
const (
	UtilizationUnder     UtilizationStatus = "UNDER_UTILIZED"
	UtilizationOnTrack   UtilizationStatus = "ON_TRACK"
	UtilizationNearLimit UtilizationStatus = "NEAR_LIMIT"
	UtilizationOver      UtilizationStatus = "OVER_BUDGET"
)

// BudgetUtilization summarizes current monthly consumption and the
// month-end projection. Pure function of the evaluation inputs.
type BudgetUtilization struct {
	MonthlyUsagePercentage   float64
	CategoryUsagePercentage  float64
	DailyBurnRate            float64
	ProjectedMonthlySpending float64
	ProjectedOverage         float64
	ProjectionConfidence     float64
	Status                   UtilizationStatus
}

// BudgetImpact is the computed effect of a hypothetical purchase on the
// ledger. Immutable; derived entirely from the evaluation inputs.
type BudgetImpact struct {
	RemainingMonthlyBudget  float64
	CategoryBudgetRemaining float64
	DailyBudgetImpact       float64
	WouldExceedBudget       bool
	StreakRisk              StreakRisk
	BudgetUtilization       BudgetUtilization
	Recommendations         Recommendations
}
