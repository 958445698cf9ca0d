package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction represents a single recorded expense or income entry.
// Transactions are immutable once created; an edit is a delete plus re-add.
type Transaction struct {
	Date           time.Time
	ID             string
	Note           string
	Category       Category // set iff expense
	IncomeCategory string   // set iff income
	Amount         float64
	IsIncome       bool
}

// GenerateID creates a content hash used as the transaction identifier and
// for duplicate detection on import.
func (t *Transaction) GenerateID() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%t",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Category,
		t.Note,
		t.IsIncome)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// Validate ensures the Transaction has valid data.
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("transaction amount must be positive, got %.2f", t.Amount)
	}

	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}

	if t.IsIncome {
		if t.Category != "" {
			return fmt.Errorf("income transactions must not carry an expense category")
		}
		return nil
	}

	if !t.Category.Valid() {
		return fmt.Errorf("expense transactions require a valid category, got %q", t.Category)
	}
	if t.IncomeCategory != "" {
		return fmt.Errorf("expense transactions must not carry an income category")
	}

	return nil
}
