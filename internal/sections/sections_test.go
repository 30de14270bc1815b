package sections

import (
	"testing"
	"time"

	"monedero/internal/model"
)

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "a", Description: "Shift income", Amount: 100, Type: model.TypeIncome, Date: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
		{ID: "b", Description: "Fuel", Amount: 40, Type: model.TypeExpense, Date: time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC)},
		{ID: "c", Description: "Car wash", Amount: 20, Type: model.TypeExpense, Date: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)},
	}
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestFilter(t *testing.T) {
	txns := sampleTransactions()

	tests := []struct {
		from    *time.Time
		to      *time.Time
		name    string
		month   time.Time
		wantIDs []string
	}{
		{
			name:    "month membership when no bounds set",
			month:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "both bounds inclusive",
			from:    datePtr(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
			to:      datePtr(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)),
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "start bound only",
			from:    datePtr(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)),
			wantIDs: []string{"c"},
		},
		{
			name:    "end bound only",
			to:      datePtr(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)),
			wantIDs: []string{"a", "b"},
		},
		{
			name:    "empty month",
			month:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(txns, tt.from, tt.to, tt.month)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter() returned %d transactions, want %d", len(got), len(tt.wantIDs))
			}
			for i, txn := range got {
				if txn.ID != tt.wantIDs[i] {
					t.Errorf("Filter()[%d].ID = %q, want %q", i, txn.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestGroup_JanuarySectionBalance(t *testing.T) {
	january := Filter(sampleTransactions(), nil, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	got := Group(january)

	if len(got) != 1 {
		t.Fatalf("Group() returned %d sections, want 1", len(got))
	}
	sec := got[0]
	if sec.ID != "2024-01-05" {
		t.Errorf("section ID = %q, want 2024-01-05", sec.ID)
	}
	if sec.Title != "05/01/2024" {
		t.Errorf("section Title = %q, want 05/01/2024", sec.Title)
	}
	if sec.Balance != 60 {
		t.Errorf("section Balance = %v, want 60", sec.Balance)
	}
	if len(sec.Rows) != 2 {
		t.Errorf("section has %d rows, want 2", len(sec.Rows))
	}
}

func TestGroup_OrdersSectionsDescending(t *testing.T) {
	got := Group(sampleTransactions())

	if len(got) != 2 {
		t.Fatalf("Group() returned %d sections, want 2", len(got))
	}
	if got[0].ID != "2024-02-01" || got[1].ID != "2024-01-05" {
		t.Errorf("section order = [%s, %s], want newest first", got[0].ID, got[1].ID)
	}
}

func TestMonthBalance(t *testing.T) {
	txns := sampleTransactions()

	if got := MonthBalance(txns, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)); got != 60 {
		t.Errorf("MonthBalance(January) = %v, want 60", got)
	}
	if got := MonthBalance(txns, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)); got != -20 {
		t.Errorf("MonthBalance(February) = %v, want -20", got)
	}
	if got := MonthBalance(txns, time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("MonthBalance(empty month) = %v, want 0", got)
	}
}

func TestExpanded_Toggle(t *testing.T) {
	e := Expanded{}

	e.Toggle("2024-01-05")
	if !e["2024-01-05"] {
		t.Error("section not expanded after first toggle")
	}
	e.Toggle("2024-01-05")
	if e["2024-01-05"] {
		t.Error("section still expanded after second toggle")
	}
}
