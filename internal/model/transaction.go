// Package model defines the transaction entity shared across the application.
package model

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"
)

// TransactionType is the direction of a transaction. The amount itself is
// always stored positive; direction comes only from the type.
type TransactionType string

// Valid transaction types.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Sign returns +1 for income and -1 for expense.
func (t TransactionType) Sign() float64 {
	if t == TypeIncome {
		return 1
	}
	return -1
}

// Transaction represents a single income or expense record.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
}

// NewID generates a collection-unique transaction ID: the current Unix
// millisecond timestamp plus a random base-36 suffix.
func NewID() string {
	suffix := strconv.FormatUint(uint64(rand.Uint32())<<16|uint64(rand.Uint32()&0xFFFF), 36)
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// SignedAmount returns the amount with the direction applied.
func (t *Transaction) SignedAmount() float64 {
	return t.Type.Sign() * t.Amount
}

// Validate checks the invariants that every stored transaction must satisfy.
// The ID is not checked here; it is assigned by the ledger on add and on
// import when missing.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("amount must be finite, got %v", t.Amount)
	}
	if t.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %v", t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date must be set")
	}
	return nil
}

// Balance returns the signed sum over txns: income counts positive, expense
// negative.
func Balance(txns []Transaction) float64 {
	var total float64
	for i := range txns {
		total += txns[i].SignedAmount()
	}
	return total
}
