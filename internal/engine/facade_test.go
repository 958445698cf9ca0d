package engine

import (
	"strings"
	"testing"

	"github.com/worthit/worthit/internal/model"
)

func facadeSnapshot() model.LedgerSnapshot {
	return model.LedgerSnapshot{
		CategoryRemaining: map[model.Category]float64{
			model.CategoryFood:          200,
			model.CategoryShopping:      300,
			model.CategoryTransport:     100,
			model.CategoryEntertainment: 50,
			model.CategoryBills:         0,
			model.CategoryOther:         25,
		},
		MonthlyBudget:          2000,
		CurrentMonthlySpending: 800,
		MonthlyBudgetRemaining: 1200,
		DaysRemainingInMonth:   12,
		TotalDaysInMonth:       31,
	}
}

func TestFacade_Check(t *testing.T) {
	facade := New()

	item := model.DetectedItem{
		Label:          "wireless headphones",
		Category:       model.CategoryShopping,
		Confidence:     0.92,
		EstimatedPrice: 120,
	}

	result, err := facade.Check(item, facadeSnapshot(), model.NewSpendingStreak())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	if !result.CanAfford {
		t.Error("expected affordable")
	}
	if result.Category != model.CategoryShopping {
		t.Errorf("category = %s, want Shopping", result.Category)
	}
	if result.EstimatedPrice != 120 {
		t.Errorf("estimatedPrice = %.2f, want 120", result.EstimatedPrice)
	}
	if result.PriceRange != (model.PriceRange{Min: 5, Max: 2000}) {
		t.Errorf("priceRange = %+v, want Shopping range", result.PriceRange)
	}
	if result.Reasoning == "" {
		t.Error("reasoning must not be empty")
	}
	if result.TransactionPreview.SuggestedNote != "wireless headphones" {
		t.Errorf("suggested note = %q", result.TransactionPreview.SuggestedNote)
	}
	if result.TransactionPreview.Amount != 120 {
		t.Errorf("preview amount = %.2f, want 120", result.TransactionPreview.Amount)
	}

	// Recommendations on the impact and the result must agree.
	if len(result.Recommendations) != len(result.BudgetImpact.Recommendations) {
		t.Error("result and impact recommendation lists diverge")
	}
}

func TestFacade_RejectsInvalidItems(t *testing.T) {
	facade := New()

	tests := []struct {
		name string
		item model.DetectedItem
	}{
		{
			name: "negative price",
			item: model.DetectedItem{Category: model.CategoryFood, Confidence: 0.9, EstimatedPrice: -5},
		},
		{
			name: "confidence above one",
			item: model.DetectedItem{Category: model.CategoryFood, Confidence: 1.5, EstimatedPrice: 10},
		},
		{
			name: "unknown category",
			item: model.DetectedItem{Category: "Gadgets", Confidence: 0.9, EstimatedPrice: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := facade.Check(tt.item, facadeSnapshot(), model.NewSpendingStreak()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFacade_AdjustmentHints(t *testing.T) {
	facade := New()

	tests := []struct {
		name       string
		confidence float64
		category   model.Category
		wantHints  int
	}{
		{
			// 0.95 * 0.95 = 0.9025
			name:       "high confidence no hints",
			confidence: 0.95,
			category:   model.CategoryFood,
			wantHints:  0,
		},
		{
			// 0.8 * 0.95 = 0.76: below review threshold only
			name:       "medium confidence one hint",
			confidence: 0.8,
			category:   model.CategoryFood,
			wantHints:  1,
		},
		{
			// 0.5 * 0.95 = 0.475: below both thresholds
			name:       "low confidence two hints",
			confidence: 0.5,
			category:   model.CategoryFood,
			wantHints:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := model.DetectedItem{
				Label:          "sandwich",
				Category:       tt.category,
				Confidence:     tt.confidence,
				EstimatedPrice: 10,
			}

			result, err := facade.Check(item, facadeSnapshot(), model.NewSpendingStreak())
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}

			if got := len(result.TransactionPreview.AdjustmentHints); got != tt.wantHints {
				t.Errorf("hints = %d (%v), want %d", got, result.TransactionPreview.AdjustmentHints, tt.wantHints)
			}
		})
	}
}

func TestFacade_ReasoningDistinguishesBlockingConstraint(t *testing.T) {
	facade := New()
	snap := facadeSnapshot()

	// Entertainment has 50 left; 80 exceeds the category.
	categoryBlocked := model.DetectedItem{Category: model.CategoryEntertainment, Confidence: 0.9, EstimatedPrice: 80}
	result, err := facade.Check(categoryBlocked, snap, model.NewSpendingStreak())
	if err != nil {
		t.Fatal(err)
	}
	if result.CanAfford {
		t.Fatal("expected unaffordable")
	}
	if !strings.Contains(result.Reasoning, "Entertainment") {
		t.Errorf("reasoning should name the category: %q", result.Reasoning)
	}

	// Shopping has 300 left but 1500 blows the monthly remainder.
	monthlyBlocked := model.DetectedItem{Category: model.CategoryShopping, Confidence: 0.9, EstimatedPrice: 1500}
	result, err = facade.Check(monthlyBlocked, snap, model.NewSpendingStreak())
	if err != nil {
		t.Fatal(err)
	}
	if result.CanAfford {
		t.Fatal("expected unaffordable")
	}
	if !result.BudgetImpact.WouldExceedBudget {
		t.Error("1500 against 300 category remaining should exceed the category too")
	}
}

func TestFacade_CustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HintReviewThreshold = 0.99
	cfg.VerifyConfidenceThreshold = 0.99
	facade := NewWithConfig(cfg)

	// Adjusted confidence 0.92*0.9 = 0.828 clears the defaults but not
	// the raised thresholds.
	item := model.DetectedItem{
		Label:          "wireless headphones",
		Category:       model.CategoryShopping,
		Confidence:     0.92,
		EstimatedPrice: 120,
	}

	result, err := facade.Check(item, facadeSnapshot(), model.NewSpendingStreak())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.TransactionPreview.AdjustmentHints) != 1 {
		t.Errorf("hints = %v, want exactly the review hint", result.TransactionPreview.AdjustmentHints)
	}
	if _, ok := findRec(result.Recommendations, model.RecommendationVerifyConfidence); !ok {
		t.Error("raised threshold should trigger confidence verification")
	}
}

func TestFacade_EmptyLabelGetsCategoryNote(t *testing.T) {
	facade := New()

	item := model.DetectedItem{Category: model.CategoryTransport, Confidence: 0.9, EstimatedPrice: 15}
	result, err := facade.Check(item, facadeSnapshot(), model.NewSpendingStreak())
	if err != nil {
		t.Fatal(err)
	}

	if result.TransactionPreview.SuggestedNote != "Transport purchase" {
		t.Errorf("suggested note = %q", result.TransactionPreview.SuggestedNote)
	}
}
