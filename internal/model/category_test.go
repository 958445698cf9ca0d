package model

import (
	"testing"
)

func TestCategoryProfiles_Invariants(t *testing.T) {
	for _, c := range AllCategories() {
		p := c.Profile()

		if p.Range.Min > p.Range.Max {
			t.Errorf("%s: range min %.2f > max %.2f", c, p.Range.Min, p.Range.Max)
		}
		if p.Multiplier <= 0 || p.Multiplier > 1 {
			t.Errorf("%s: multiplier %.2f outside (0,1]", c, p.Multiplier)
		}
		if p.MinConfidence < 0 || p.MinConfidence > 1 {
			t.Errorf("%s: min confidence %.2f outside [0,1]", c, p.MinConfidence)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"Food", CategoryFood, false},
		{"food", CategoryFood, false},
		{"TRANSPORT", CategoryTransport, false},
		{"Entertainment", CategoryEntertainment, false},
		{"groceries", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestCategory_ProfileFallsBackToOther(t *testing.T) {
	got := Category("Mystery").Profile()
	want := CategoryOther.Profile()

	if got.Multiplier != want.Multiplier || got.MinConfidence != want.MinConfidence {
		t.Error("unknown category should use the Other profile")
	}
}

func TestPriceRange_Contains(t *testing.T) {
	r := PriceRange{Min: 10, Max: 100}

	for price, want := range map[float64]bool{9.99: false, 10: true, 55: true, 100: true, 100.01: false} {
		if got := r.Contains(price); got != want {
			t.Errorf("Contains(%.2f) = %v, want %v", price, got, want)
		}
	}
}
