package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/worthit/worthit/internal/model"
)

// Facade is the single entry point for evaluating a candidate purchase. It
// composes the evaluator, the recommendation engine, and the streak
// tracker into one AffordabilityResult. Stateless beyond its configuration;
// the caller owns the ledger and streak state and supplies consistent
// snapshots per call.
type Facade struct {
	cfg         Config
	evaluator   *Evaluator
	recommender *Recommender
	tracker     *StreakTracker
}

// New creates a decision facade with the default configuration.
func New() *Facade {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a decision facade with a custom configuration.
func NewWithConfig(cfg Config) *Facade {
	return &Facade{
		cfg:         cfg,
		evaluator:   NewEvaluator(),
		recommender: NewRecommenderWithConfig(cfg),
		tracker:     NewStreakTracker(),
	}
}

// Tracker exposes the streak tracker for callers that advance the streak
// outside an evaluation.
func (f *Facade) Tracker() *StreakTracker {
	return f.tracker
}

// Check evaluates a detected item against the ledger snapshot and current
// streak and assembles the full result. A negative estimated price is an
// invalid argument and is rejected rather than clamped.
func (f *Facade) Check(item model.DetectedItem, snapshot model.LedgerSnapshot, streak model.SpendingStreak) (*model.AffordabilityResult, error) {
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detected item: %w", err)
	}

	gate := model.NewConfidenceGate(item.Confidence, item.Category)

	impact, canAfford := f.evaluator.Evaluate(item.Category, item.EstimatedPrice, snapshot, streak.CurrentStreak)

	recs := f.recommender.Generate(canAfford, item.EstimatedPrice, item.Category, impact,
		snapshot.OtherCategoryRemainders(item.Category), gate)
	impact.Recommendations = recs

	result := &model.AffordabilityResult{
		CanAfford:          canAfford,
		EstimatedPrice:     item.EstimatedPrice,
		PriceRange:         item.Category.Profile().Range,
		Category:           item.Category,
		BudgetImpact:       impact,
		Reasoning:          buildReasoning(item, canAfford, impact),
		Confidence:         gate,
		Recommendations:    recs,
		TransactionPreview: f.buildPreview(item, gate),
	}

	slog.Debug("Evaluated purchase",
		"label", item.Label,
		"category", item.Category,
		"price", item.EstimatedPrice,
		"can_afford", canAfford,
		"streak_risk", impact.StreakRisk,
		"recommendations", len(recs))

	return result, nil
}

// buildReasoning renders a short human-readable summary of the decision.
// Exact wording is presentation, not contract.
func buildReasoning(item model.DetectedItem, canAfford bool, impact model.BudgetImpact) string {
	var b strings.Builder

	if canAfford {
		fmt.Fprintf(&b, "%.2f fits within both your %s budget and your monthly budget.",
			item.EstimatedPrice, item.Category)
	} else if impact.WouldExceedBudget {
		fmt.Fprintf(&b, "%.2f exceeds what is left of your %s budget.",
			item.EstimatedPrice, item.Category)
	} else {
		fmt.Fprintf(&b, "%.2f fits your %s budget but not what is left of your monthly budget.",
			item.EstimatedPrice, item.Category)
	}

	switch impact.StreakRisk {
	case model.StreakRiskHigh:
		b.WriteString(" Buying it now would very likely break your streak.")
	case model.StreakRiskMedium:
		b.WriteString(" It puts meaningful pressure on your streak.")
	case model.StreakRiskLow:
		b.WriteString(" Your streak can absorb it.")
	}

	return b.String()
}

// buildPreview assembles the suggested transaction with zero-to-two
// adjustment hints keyed off the adjusted confidence.
func (f *Facade) buildPreview(item model.DetectedItem, gate model.ConfidenceGate) model.TransactionPreview {
	note := item.Label
	if note == "" {
		note = fmt.Sprintf("%s purchase", item.Category)
	}

	var hints []string
	if gate.Adjusted < f.cfg.HintReviewThreshold {
		hints = append(hints, "Review the estimated price before saving.")
	}
	if gate.Adjusted < f.cfg.HintRescanThreshold {
		hints = append(hints, "Low confidence: re-scan or pick the category manually.")
	}

	return model.TransactionPreview{
		Amount:          item.EstimatedPrice,
		Category:        item.Category,
		SuggestedNote:   note,
		Confidence:      gate.Adjusted,
		AdjustmentHints: hints,
	}
}
