package model

import "fmt"

// DetectedItem is the engine's view of a recognized purchase candidate.
// The detection pipeline that produces it is an external collaborator; the
// engine consumes its fields as final and never reinterprets sensor data.
type DetectedItem struct {
	Label          string
	Category       Category
	Confidence     float64
	EstimatedPrice float64
}

// Validate ensures the DetectedItem has valid data.
func (d *DetectedItem) Validate() error {
	if !d.Category.Valid() {
		return fmt.Errorf("unknown category %q", d.Category)
	}
	if d.Confidence < 0 || d.Confidence > 1 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", d.Confidence)
	}
	if d.EstimatedPrice < 0 {
		return fmt.Errorf("estimated price must be non-negative, got %.2f", d.EstimatedPrice)
	}
	return nil
}

// ConfidenceGate carries the raw detection confidence, the value adjusted by
// the category multiplier, and whether the adjusted value clears the
// category's minimum threshold. Both the evaluator and the recommendation
// engine consume this single object instead of recomputing thresholds.
type ConfidenceGate struct {
	Raw            float64
	Adjusted       float64
	MeetsThreshold bool
}

// NewConfidenceGate applies the category's multiplier and minimum threshold
// to a raw detection confidence.
func NewConfidenceGate(raw float64, category Category) ConfidenceGate {
	profile := category.Profile()

	adjusted := raw * profile.Multiplier
	if adjusted > 1 {
		adjusted = 1
	}
	if adjusted < 0 {
		adjusted = 0
	}

	return ConfidenceGate{
		Raw:            raw,
		Adjusted:       adjusted,
		MeetsThreshold: adjusted >= profile.MinConfidence,
	}
}
