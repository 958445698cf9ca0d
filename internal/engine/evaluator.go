// Package engine implements the core affordability decision engine: the
// evaluator, the recommendation generator, the streak tracker, and the
// facade composing them.
package engine

import (
	"github.com/worthit/worthit/internal/model"
)

// Streak-risk score thresholds.
const (
	riskThresholdHigh   = 0.8
	riskThresholdMedium = 0.6
	riskThresholdLow    = 0.3

	// streakMaturityDays is the streak length at which the risk
	// multiplier saturates.
	streakMaturityDays = 30
)

// Evaluator computes the affordability decision and budget impact for a
// candidate purchase. Stateless; safe for concurrent use.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate decides whether a purchase of estimatedPrice in the given
// category is affordable against the snapshot, and computes the full
// budget impact. The affordability gate is conjunctive: the price must fit
// both the category remainder and the monthly remainder.
//
// daysRemainingInMonth is clamped to at least 1 even though callers are
// expected to do the same.
func (e *Evaluator) Evaluate(category model.Category, estimatedPrice float64, snapshot model.LedgerSnapshot, currentStreak int) (model.BudgetImpact, bool) {
	if estimatedPrice < 0 {
		estimatedPrice = 0
	}

	daysRemaining := snapshot.DaysRemainingInMonth
	if daysRemaining < 1 {
		daysRemaining = 1
	}

	categoryRemaining := snapshot.CategoryBudgetRemaining(category)
	monthlyRemaining := snapshot.MonthlyBudgetRemaining

	canAfford := estimatedPrice <= categoryRemaining && estimatedPrice <= monthlyRemaining

	risk := e.scoreStreakRisk(canAfford, estimatedPrice, categoryRemaining, monthlyRemaining, currentStreak)

	impact := model.BudgetImpact{
		RemainingMonthlyBudget:  monthlyRemaining - estimatedPrice,
		CategoryBudgetRemaining: categoryRemaining - estimatedPrice,
		DailyBudgetImpact:       estimatedPrice / float64(daysRemaining),
		WouldExceedBudget:       estimatedPrice > categoryRemaining,
		StreakRisk:              risk,
		BudgetUtilization:       e.computeUtilization(estimatedPrice, snapshot, daysRemaining, risk),
	}

	return impact, canAfford
}

// scoreStreakRisk rates how much the purchase threatens the streak. An
// unaffordable purchase is always High risk. Zero remainders are guarded:
// with a positive price they mean High, and with a zero price there is
// nothing at stake, so None.
func (e *Evaluator) scoreStreakRisk(canAfford bool, price, categoryRemaining, monthlyRemaining float64, currentStreak int) model.StreakRisk {
	if !canAfford {
		return model.StreakRiskHigh
	}

	if categoryRemaining <= 0 || monthlyRemaining <= 0 {
		if price <= 0 {
			return model.StreakRiskNone
		}
		return model.StreakRiskHigh
	}

	streakMultiplier := float64(currentStreak) / streakMaturityDays
	if streakMultiplier > 1 {
		streakMultiplier = 1
	}

	categoryUtilization := price / categoryRemaining
	monthlyUtilization := price / monthlyRemaining
	riskScore := (categoryUtilization + monthlyUtilization) / 2 * (1 + streakMultiplier)

	switch {
	case riskScore > riskThresholdHigh:
		return model.StreakRiskHigh
	case riskScore > riskThresholdMedium:
		return model.StreakRiskMedium
	case riskScore > riskThresholdLow:
		return model.StreakRiskLow
	default:
		return model.StreakRiskNone
	}
}

// computeUtilization derives the monthly consumption picture and month-end
// projection for the hypothetical purchase.
func (e *Evaluator) computeUtilization(price float64, snapshot model.LedgerSnapshot, daysRemaining int, risk model.StreakRisk) model.BudgetUtilization {
	monthlyBudget := snapshot.MonthlyBudget

	var monthlyUsage, categoryUsage float64
	if monthlyBudget > 0 {
		monthlyUsage = snapshot.CurrentMonthlySpending / monthlyBudget

		remainingAfterPurchase := snapshot.MonthlyBudgetRemaining - price
		categoryUsage = (monthlyBudget - remainingAfterPurchase) / monthlyBudget
	}

	daysElapsed := snapshot.TotalDaysInMonth - daysRemaining
	if daysElapsed < 1 {
		daysElapsed = 1
	}
	dailyBurnRate := snapshot.CurrentMonthlySpending / float64(daysElapsed)

	dailyImpact := price / float64(daysRemaining)
	projected := snapshot.CurrentMonthlySpending + dailyImpact*float64(daysRemaining)

	overage := projected - monthlyBudget
	if overage < 0 {
		overage = 0
	}

	return model.BudgetUtilization{
		MonthlyUsagePercentage:   monthlyUsage,
		CategoryUsagePercentage:  categoryUsage,
		DailyBurnRate:            dailyBurnRate,
		ProjectedMonthlySpending: projected,
		ProjectedOverage:         overage,
		ProjectionConfidence:     projectionConfidence(risk),
		Status:                   classifyUtilization(monthlyUsage),
	}
}

// classifyUtilization maps monthly usage onto the four-level status.
func classifyUtilization(monthlyUsage float64) model.UtilizationStatus {
	switch {
	case monthlyUsage <= 0.7:
		return model.UtilizationUnder
	case monthlyUsage <= 0.9:
		return model.UtilizationOnTrack
	case monthlyUsage <= 1.0:
		return model.UtilizationNearLimit
	default:
		return model.UtilizationOver
	}
}

// projectionConfidence weights the month-end projection by streak risk.
// Medium and High share the lowest confidence.
func projectionConfidence(risk model.StreakRisk) float64 {
	switch risk {
	case model.StreakRiskNone:
		return 0.9
	case model.StreakRiskLow:
		return 0.7
	default:
		return 0.5
	}
}
