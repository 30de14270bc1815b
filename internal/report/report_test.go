package report

import (
	"strings"
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

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
}

func TestBuild_NoBounds(t *testing.T) {
	doc := Build(sampleTransactions(), Options{Now: fixedNow})

	// All three rows present, newest first.
	febIdx := strings.Index(doc, "Car wash")
	janIncomeIdx := strings.Index(doc, "Shift income")
	janFuelIdx := strings.Index(doc, "Fuel")
	if febIdx < 0 || janIncomeIdx < 0 || janFuelIdx < 0 {
		t.Fatalf("document is missing rows:\n%s", doc)
	}
	if febIdx > janIncomeIdx || febIdx > janFuelIdx {
		t.Error("February row should come before January rows (descending by date)")
	}

	if !strings.Contains(doc, "Period: Beginning to End") {
		t.Error("document missing unbounded period label")
	}
	if !strings.Contains(doc, "Net Balance: +€40.00") {
		t.Error("document missing net balance of +€40.00")
	}
	if !strings.Contains(doc, "Income: €100.00") {
		t.Error("document missing income total")
	}
	if !strings.Contains(doc, "Expenses: €60.00") {
		t.Error("document missing expense total")
	}
	if !strings.Contains(doc, "Generated at 01/06/2024 12:30") {
		t.Error("document missing generated-at footer")
	}
}

func TestBuild_DateWindow(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	doc := Build(sampleTransactions(), Options{From: &from, To: &to, Now: fixedNow})

	if strings.Contains(doc, "Car wash") {
		t.Error("February row leaked into a January-only report")
	}
	if !strings.Contains(doc, "Period: 01/01/2024 to 31/01/2024") {
		t.Error("document missing period label")
	}
	// Net over the filtered set, not the whole collection.
	if !strings.Contains(doc, "Net Balance: +€60.00") {
		t.Error("net balance should be computed over the filtered rows only")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	txns := sampleTransactions()
	first := Build(txns, Options{Now: fixedNow})
	second := Build(txns, Options{Now: fixedNow})
	if first != second {
		t.Error("Build() is not deterministic for identical inputs and clock")
	}
}

func TestBuild_EscapesDescriptions(t *testing.T) {
	txns := []model.Transaction{
		{ID: "x", Description: "<script>alert(1)</script>", Amount: 5, Type: model.TypeExpense, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	doc := Build(txns, Options{Now: fixedNow})
	if strings.Contains(doc, "<script>") {
		t.Error("description was not HTML-escaped")
	}
}

func TestSummarize(t *testing.T) {
	txns := sampleTransactions()

	sum := Summarize(txns, nil, nil)
	if sum.Income != 100 || sum.Expense != 60 || sum.Net != 40 {
		t.Errorf("Summarize() = %+v, want income 100, expense 60, net 40", sum)
	}

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	sum = Summarize(txns, &from, nil)
	if sum.Income != 0 || sum.Expense != 20 || sum.Net != -20 {
		t.Errorf("Summarize(Feb onward) = %+v, want expense 20, net -20", sum)
	}
}
