package engine

import (
	"fmt"
	"math"

	"github.com/worthit/worthit/internal/model"
)

// Recommender turns an evaluation outcome into a ranked list of actionable
// suggestions. Stateless beyond its configuration; safe for concurrent use.
type Recommender struct {
	cfg Config
}

// NewRecommender creates a Recommender with the default configuration.
func NewRecommender() *Recommender {
	return NewRecommenderWithConfig(DefaultConfig())
}

// NewRecommenderWithConfig creates a Recommender with a custom configuration.
func NewRecommenderWithConfig(cfg Config) *Recommender {
	return &Recommender{cfg: cfg}
}

// Generate produces the ordered recommendation list for a candidate
// purchase. The returned slice is sorted non-increasing by priority;
// recommendations of equal priority keep their emission order.
func (r *Recommender) Generate(canAfford bool, estimatedPrice float64, category model.Category, impact model.BudgetImpact, otherRemainders []float64, gate model.ConfidenceGate) model.Recommendations {
	var recs model.Recommendations

	if !canAfford {
		recs = append(recs, r.savingsPlan(estimatedPrice, category, impact))

		if realloc, ok := r.reallocation(estimatedPrice, category, impact, otherRemainders); ok {
			recs = append(recs, realloc)
		}
	} else {
		if impact.StreakRisk != model.StreakRiskNone {
			recs = append(recs, r.streakProtection(impact.StreakRisk))
		}

		if impact.BudgetUtilization.MonthlyUsagePercentage > r.cfg.TimingThreshold {
			recs = append(recs, model.Recommendation{
				Type:     model.RecommendationOptimalTiming,
				Priority: model.PriorityLow,
				Title:    "Consider waiting",
				Detail: fmt.Sprintf("You have used %.0f%% of this month's budget; buying early next month keeps more slack.",
					impact.BudgetUtilization.MonthlyUsagePercentage*100),
			})
		}

		if gate.Adjusted < r.cfg.VerifyConfidenceThreshold {
			recs = append(recs, model.Recommendation{
				Type:     model.RecommendationVerifyConfidence,
				Priority: model.PriorityMedium,
				Title:    "Double-check the detection",
				Detail: fmt.Sprintf("Detection confidence is %.0f%%; verify the price and category before recording.",
					gate.Adjusted*100),
			})
		}
	}

	recs.SortByPriority()
	return recs
}

// savingsPlan proposes saving up the category shortfall over the fixed
// savings window.
func (r *Recommender) savingsPlan(estimatedPrice float64, category model.Category, impact model.BudgetImpact) model.Recommendation {
	// CategoryBudgetRemaining in the impact is post-purchase; recover the
	// pre-purchase remainder for the shortfall.
	categoryRemaining := impact.CategoryBudgetRemaining + estimatedPrice
	shortfall := estimatedPrice - categoryRemaining

	dailySavingsNeeded := shortfall / float64(r.cfg.SavingsWindowDays)

	daysToSave := r.cfg.SavingsWindowDays
	if dailySavingsNeeded > 0 {
		daysToSave = int(math.Ceil(shortfall / dailySavingsNeeded))
	}

	return model.Recommendation{
		Type:     model.RecommendationSavingsPlan,
		Priority: model.PriorityMedium,
		Title:    "Save up first",
		Detail: fmt.Sprintf("Set aside %.2f per day for %d days to cover the %.2f %s shortfall.",
			dailySavingsNeeded, daysToSave, shortfall, category),
		DailySavingsNeeded: dailySavingsNeeded,
		DaysToSave:         daysToSave,
	}
}

// reallocation is emitted only when the other categories' positive
// remainders can more than cover the shortfall.
func (r *Recommender) reallocation(estimatedPrice float64, category model.Category, impact model.BudgetImpact, otherRemainders []float64) (model.Recommendation, bool) {
	categoryRemaining := impact.CategoryBudgetRemaining + estimatedPrice
	shortfall := estimatedPrice - categoryRemaining

	var available float64
	for _, remainder := range otherRemainders {
		if remainder > 0 {
			available += remainder
		}
	}

	if available <= shortfall {
		return model.Recommendation{}, false
	}

	return model.Recommendation{
		Type:     model.RecommendationReallocation,
		Priority: model.PriorityHigh,
		Title:    "Reallocate budget",
		Detail: fmt.Sprintf("Other categories have %.2f unspent; moving %.2f into %s covers this purchase.",
			available, shortfall, category),
		AvailableToMove: available,
	}, true
}

func (r *Recommender) streakProtection(risk model.StreakRisk) model.Recommendation {
	priority := model.PriorityMedium
	if risk == model.StreakRiskHigh {
		priority = model.PriorityHigh
	}

	return model.Recommendation{
		Type:     model.RecommendationStreakProtection,
		Priority: priority,
		Title:    "Streak at risk",
		Detail:   "This purchase puts your days-within-budget streak in danger; consider a cheaper alternative.",
	}
}
