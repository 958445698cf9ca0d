package model

// TransactionPreview is the suggested transaction a caller may commit after
// an evaluation. AdjustmentHints carries zero to two notes keyed off the
// adjusted detection confidence.
type TransactionPreview struct {
	SuggestedNote   string
	AdjustmentHints []string
	Category        Category
	Amount          float64
	Confidence      float64
}

// AffordabilityResult is the assembled outcome of one evaluation call.
// Constructed fresh per call and never mutated; the caller may discard it or
// convert the preview into a committed Transaction.
type AffordabilityResult struct {
	Reasoning          string
	Category           Category
	PriceRange         PriceRange
	Recommendations    Recommendations
	BudgetImpact       BudgetImpact
	TransactionPreview TransactionPreview
	EstimatedPrice     float64
	Confidence         ConfidenceGate
	CanAfford          bool
}
