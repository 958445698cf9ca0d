package model

import (
	"testing"
	"time"
)

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		txn     Transaction
		wantErr bool
	}{
		{
			name: "valid expense",
			txn:  Transaction{Date: date, Amount: 12.50, Category: CategoryFood},
		},
		{
			name: "valid income",
			txn:  Transaction{Date: date, Amount: 2500, IsIncome: true, IncomeCategory: "Salary"},
		},
		{
			name:    "zero amount",
			txn:     Transaction{Date: date, Amount: 0, Category: CategoryFood},
			wantErr: true,
		},
		{
			name:    "negative amount",
			txn:     Transaction{Date: date, Amount: -5, Category: CategoryFood},
			wantErr: true,
		},
		{
			name:    "missing date",
			txn:     Transaction{Amount: 10, Category: CategoryFood},
			wantErr: true,
		},
		{
			name:    "expense without category",
			txn:     Transaction{Date: date, Amount: 10},
			wantErr: true,
		},
		{
			name:    "expense with income category",
			txn:     Transaction{Date: date, Amount: 10, Category: CategoryFood, IncomeCategory: "Salary"},
			wantErr: true,
		},
		{
			name:    "income with expense category",
			txn:     Transaction{Date: date, Amount: 10, IsIncome: true, Category: CategoryFood},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.txn.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_GenerateID(t *testing.T) {
	date := time.Date(2026, time.August, 10, 14, 30, 0, 0, time.UTC)

	a := Transaction{Date: date, Amount: 12.50, Category: CategoryFood, Note: "lunch"}
	b := Transaction{Date: date, Amount: 12.50, Category: CategoryFood, Note: "lunch"}
	c := Transaction{Date: date, Amount: 12.51, Category: CategoryFood, Note: "lunch"}

	if a.GenerateID() != b.GenerateID() {
		t.Error("identical transactions must hash identically")
	}
	if a.GenerateID() == c.GenerateID() {
		t.Error("different amounts must hash differently")
	}
	if len(a.GenerateID()) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a.GenerateID()))
	}
}
