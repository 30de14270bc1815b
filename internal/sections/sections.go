// Package sections turns a transaction collection into the grouped-by-day
// view used by the list command and the TUI: filtered rows, one section per
// calendar day with its own sub-balance, newest day first.
package sections

import (
	"sort"
	"time"

	"monedero/internal/model"
)

// Section is one calendar day of transactions.
type Section struct {
	// ID is the grouping key, formatted yyyy-mm-dd.
	ID string
	// Title is the display form of the day, dd/mm/yyyy.
	Title string
	// Rows are the day's transactions in collection order.
	Rows []model.Transaction
	// Balance is the signed sum over the day's rows.
	Balance float64
}

// Filter selects transactions for the active filter. With any explicit bound
// set, the inclusive interval rule applies: both bounds, on/after from only,
// or on/before to only. With no bounds, membership in the given calendar
// month decides.
func Filter(txns []model.Transaction, from, to *time.Time, month time.Time) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		switch {
		case from != nil && to != nil:
			if !txn.Date.Before(*from) && !txn.Date.After(*to) {
				out = append(out, txn)
			}
		case from != nil:
			if !txn.Date.Before(*from) {
				out = append(out, txn)
			}
		case to != nil:
			if !txn.Date.After(*to) {
				out = append(out, txn)
			}
		default:
			if sameMonth(txn.Date, month) {
				out = append(out, txn)
			}
		}
	}
	return out
}

// Group builds day sections over txns, ordered descending by date.
func Group(txns []model.Transaction) []Section {
	byDay := make(map[string]*Section)
	for _, txn := range txns {
		id := txn.Date.Format("2006-01-02")
		sec, ok := byDay[id]
		if !ok {
			sec = &Section{
				ID:    id,
				Title: txn.Date.Format("02/01/2006"),
			}
			byDay[id] = sec
		}
		sec.Rows = append(sec.Rows, txn)
		sec.Balance += txn.SignedAmount()
	}

	out := make([]Section, 0, len(byDay))
	for _, sec := range byDay {
		out = append(out, *sec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	return out
}

// MonthBalance returns the signed sum over the calendar month containing
// month.
func MonthBalance(txns []model.Transaction, month time.Time) float64 {
	var total float64
	for _, txn := range txns {
		if sameMonth(txn.Date, month) {
			total += txn.SignedAmount()
		}
	}
	return total
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Expanded tracks which sections show their rows. Expansion state is
// client-side and orthogonal to grouping.
type Expanded map[string]bool

// Toggle flips the expansion state of the section with the given ID.
func (e Expanded) Toggle(id string) {
	if e[id] {
		delete(e, id)
	} else {
		e[id] = true
	}
}
