package engine

// Config tunes the decision engine's recommendation and preview behavior.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// SavingsWindowDays is the fixed window the savings plan divides the
	// shortfall over. Because daysToSave is then recomputed from the same
	// denominator, the plan always comes out to this many days.
	SavingsWindowDays int

	// TimingThreshold is the monthly usage above which a purchase is
	// better deferred to early next month.
	TimingThreshold float64

	// VerifyConfidenceThreshold is the adjusted confidence below which
	// the user should double-check the detected price and category.
	VerifyConfidenceThreshold float64

	// HintReviewThreshold and HintRescanThreshold gate the transaction
	// preview's adjustment hints on adjusted confidence.
	HintReviewThreshold float64
	HintRescanThreshold float64
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		SavingsWindowDays:         30,
		TimingThreshold:           0.7,
		VerifyConfidenceThreshold: 0.8,
		HintReviewThreshold:       0.8,
		HintRescanThreshold:       0.7,
	}
}
