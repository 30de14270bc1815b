package model

import (
	"math"
	"testing"
	"time"
)

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		txn     Transaction
		wantErr bool
	}{
		{
			name: "valid income",
			txn:  Transaction{Type: TypeIncome, Amount: 100, Date: date},
		},
		{
			name: "valid expense",
			txn:  Transaction{Type: TypeExpense, Amount: 40, Date: date},
		},
		{
			name: "zero amount is allowed",
			txn:  Transaction{Type: TypeExpense, Amount: 0, Date: date},
		},
		{
			name:    "unknown type",
			txn:     Transaction{Type: "transfer", Amount: 10, Date: date},
			wantErr: true,
		},
		{
			name:    "negative amount",
			txn:     Transaction{Type: TypeIncome, Amount: -5, Date: date},
			wantErr: true,
		},
		{
			name:    "NaN amount",
			txn:     Transaction{Type: TypeIncome, Amount: math.NaN(), Date: date},
			wantErr: true,
		},
		{
			name:    "infinite amount",
			txn:     Transaction{Type: TypeExpense, Amount: math.Inf(1), Date: date},
			wantErr: true,
		},
		{
			name:    "missing date",
			txn:     Transaction{Type: TypeIncome, Amount: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestBalance(t *testing.T) {
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		txns []Transaction
		want float64
	}{
		{
			name: "empty collection",
			txns: nil,
			want: 0,
		},
		{
			name: "income minus expense",
			txns: []Transaction{
				{Type: TypeIncome, Amount: 100, Date: date},
				{Type: TypeExpense, Amount: 40, Date: date},
				{Type: TypeExpense, Amount: 20, Date: date},
			},
			want: 40,
		},
		{
			name: "expenses only go negative",
			txns: []Transaction{
				{Type: TypeExpense, Amount: 12.5, Date: date},
				{Type: TypeExpense, Amount: 7.5, Date: date},
			},
			want: -20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Balance(tt.txns); got != tt.want {
				t.Errorf("Balance() = %v, want %v", got, tt.want)
			}
		})
	}
}
