package detect

import (
	"testing"

	"github.com/worthit/worthit/internal/model"
)

func TestDetector_Detect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name         string
		label        string
		price        float64
		wantCategory model.Category
	}{
		{
			name:         "exact keyword",
			label:        "coffee",
			price:        4.50,
			wantCategory: model.CategoryFood,
		},
		{
			name:         "keyword inside label",
			label:        "morning coffee to go",
			price:        4.50,
			wantCategory: model.CategoryFood,
		},
		{
			name:         "shopping keyword",
			label:        "noise cancelling headphones",
			price:        250,
			wantCategory: model.CategoryShopping,
		},
		{
			name:         "transport keyword",
			label:        "uber ride home",
			price:        18,
			wantCategory: model.CategoryTransport,
		},
		{
			name:         "multi-word bills keyword",
			label:        "monthly phone bill payment",
			price:        45,
			wantCategory: model.CategoryBills,
		},
		{
			name:         "unmatched label falls back to other",
			label:        "mystery gadget",
			price:        30,
			wantCategory: model.CategoryOther,
		},
		{
			name:         "empty label falls back to other",
			label:        "",
			price:        30,
			wantCategory: model.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := d.Detect(tt.label, tt.price)

			if item.Category != tt.wantCategory {
				t.Errorf("category = %s, want %s", item.Category, tt.wantCategory)
			}
			if item.EstimatedPrice != tt.price {
				t.Errorf("price = %.2f, want %.2f", item.EstimatedPrice, tt.price)
			}
			if item.Confidence < 0 || item.Confidence > 1 {
				t.Errorf("confidence %.2f outside [0,1]", item.Confidence)
			}
			if err := item.Validate(); err != nil {
				t.Errorf("detected item invalid: %v", err)
			}
		})
	}
}

func TestDetector_OutOfRangePenalty(t *testing.T) {
	d := NewDetector()

	// Food's typical range tops out well below 5000.
	inRange := d.Detect("coffee", 4.50)
	outOfRange := d.Detect("coffee", 5000)

	if outOfRange.Confidence >= inRange.Confidence {
		t.Errorf("out-of-range price should reduce confidence: %.3f >= %.3f",
			outOfRange.Confidence, inRange.Confidence)
	}
	if outOfRange.Category != model.CategoryFood {
		t.Error("penalty must not change the category")
	}
}

func TestDetector_Deterministic(t *testing.T) {
	d := NewDetector()

	first := d.Detect("concert ticket", 60)
	second := d.Detect("concert ticket", 60)

	if first != second {
		t.Errorf("detection is not deterministic: %+v vs %+v", first, second)
	}
}
