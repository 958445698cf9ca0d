// Package detect maps free-form item labels onto expense categories. It is
// a deterministic, offline stand-in for the detection pipeline boundary:
// the engine consumes its DetectedItem output as opaque input.
package detect

import (
	"strings"

	"github.com/worthit/worthit/internal/model"
)

// Base confidences before the category multiplier is applied.
const (
	confidenceWordMatch = 0.9
	confidenceSubstring = 0.75
	confidenceFallback  = 0.5

	// outOfRangePenalty shaves confidence when the price falls outside
	// the category's typical band.
	outOfRangePenalty = 0.8
)

// Detector guesses a category and confidence for a labeled price.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect produces a DetectedItem for a user-supplied label and price.
// Keyword matching picks the category (longest matching keyword wins across
// categories); unmatched labels fall back to Other. The raw confidence is
// scaled by the category's multiplier and reduced when the price is outside
// the category's typical range.
func (d *Detector) Detect(label string, price float64) model.DetectedItem {
	category, base := matchCategory(label)

	confidence := base * category.Profile().Multiplier
	if !category.Profile().Range.Contains(price) {
		confidence *= outOfRangePenalty
	}
	if confidence > 1 {
		confidence = 1
	}

	return model.DetectedItem{
		Label:          label,
		Category:       category,
		Confidence:     confidence,
		EstimatedPrice: price,
	}
}

// matchCategory scans every category's keyword list for the best match.
func matchCategory(label string) (model.Category, float64) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return model.CategoryOther, confidenceFallback
	}

	words := strings.Fields(normalized)

	best := model.CategoryOther
	bestBase := confidenceFallback
	bestLen := 0

	for _, category := range model.AllCategories() {
		for _, keyword := range category.Profile().Keywords {
			if len(keyword) <= bestLen {
				continue
			}

			if containsWord(words, keyword) {
				best, bestBase, bestLen = category, confidenceWordMatch, len(keyword)
			} else if strings.Contains(normalized, keyword) {
				best, bestBase, bestLen = category, confidenceSubstring, len(keyword)
			}
		}
	}

	return best, bestBase
}

func containsWord(words []string, keyword string) bool {
	for _, w := range words {
		if w == keyword {
			return true
		}
	}
	return false
}
