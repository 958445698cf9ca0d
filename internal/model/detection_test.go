package model

import "testing"

func TestNewConfidenceGate(t *testing.T) {
	tests := []struct {
		name          string
		raw           float64
		category      Category
		wantAdjusted  float64
		wantThreshold bool
	}{
		{
			// 0.9 * 0.95
			name:          "food detection passes",
			raw:           0.9,
			category:      CategoryFood,
			wantAdjusted:  0.855,
			wantThreshold: true,
		},
		{
			// 0.6 * 0.95 = 0.57 < 0.6 minimum
			name:          "borderline food detection fails",
			raw:           0.6,
			category:      CategoryFood,
			wantAdjusted:  0.57,
			wantThreshold: false,
		},
		{
			// adjusted clamps to 1 even with multiplier applied to raw > 1 inputs
			name:          "raw above one clamps",
			raw:           1.2,
			category:      CategoryBills,
			wantAdjusted:  1.0,
			wantThreshold: true,
		},
		{
			name:          "negative raw clamps to zero",
			raw:           -0.5,
			category:      CategoryOther,
			wantAdjusted:  0,
			wantThreshold: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewConfidenceGate(tt.raw, tt.category)

			const epsilon = 1e-9
			if diff := gate.Adjusted - tt.wantAdjusted; diff < -epsilon || diff > epsilon {
				t.Errorf("adjusted = %v, want %v", gate.Adjusted, tt.wantAdjusted)
			}
			if gate.MeetsThreshold != tt.wantThreshold {
				t.Errorf("meetsThreshold = %v, want %v", gate.MeetsThreshold, tt.wantThreshold)
			}
			if gate.Raw != tt.raw {
				t.Errorf("raw = %v, want %v", gate.Raw, tt.raw)
			}
		})
	}
}

func TestDetectedItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    DetectedItem
		wantErr bool
	}{
		{
			name: "valid",
			item: DetectedItem{Category: CategoryFood, Confidence: 0.8, EstimatedPrice: 12},
		},
		{
			name:    "negative price",
			item:    DetectedItem{Category: CategoryFood, Confidence: 0.8, EstimatedPrice: -1},
			wantErr: true,
		},
		{
			name:    "confidence out of range",
			item:    DetectedItem{Category: CategoryFood, Confidence: 1.01, EstimatedPrice: 12},
			wantErr: true,
		},
		{
			name:    "bad category",
			item:    DetectedItem{Category: "Snacks", Confidence: 0.8, EstimatedPrice: 12},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.item.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
