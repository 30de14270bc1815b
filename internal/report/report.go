// Package report builds the printable transaction report: a self-contained
// HTML document handed to an external print-to-file facility. Building the
// document never depends on actual PDF rendering.
package report

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"monedero/internal/model"
)

// farFuture is the open upper bound used when no end date is set.
var farFuture = time.Date(2099, 12, 31, 23, 59, 59, 0, time.UTC)

// Options bound and parameterize a report.
type Options struct {
	// From and To delimit the inclusive date window. A nil bound is
	// unbounded.
	From *time.Time
	To   *time.Time
	// Now supplies the "generated at" footer timestamp. Defaults to
	// time.Now; injectable so tests stay deterministic.
	Now func() time.Time
}

// Summary holds the totals computed over the filtered rows.
type Summary struct {
	Income  float64
	Expense float64
	Net     float64
}

// Build renders the report document for txns within the date window: header
// with the period label, summary block, one row per transaction sorted
// descending by date, and a totals row. Pure apart from the footer timestamp.
func Build(txns []model.Transaction, opts Options) string {
	from := time.Unix(0, 0).UTC()
	if opts.From != nil {
		from = *opts.From
	}
	to := farFuture
	if opts.To != nil {
		to = *opts.To
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	rows := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if !txn.Date.Before(from) && !txn.Date.After(to) {
			rows = append(rows, txn)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})

	var sum Summary
	for _, txn := range rows {
		if txn.Type == model.TypeIncome {
			sum.Income += txn.Amount
		} else {
			sum.Expense += txn.Amount
		}
		sum.Net += txn.SignedAmount()
	}

	fromLabel := "Beginning"
	if opts.From != nil {
		fromLabel = opts.From.Format("02/01/2006")
	}
	toLabel := "End"
	if opts.To != nil {
		toLabel = opts.To.Format("02/01/2006")
	}

	var b strings.Builder
	b.WriteString(`<html>
<head>
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<style>
body { font-family: -apple-system, 'Segoe UI', 'Roboto', 'Helvetica Neue', sans-serif; padding: 20px; font-size: 14px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
.summary { margin: 20px 0; padding: 15px; background-color: #f8f9fa; border-radius: 5px; }
.total-row { font-weight: bold; background-color: #f8f9fa; }
.footer { color: #888; font-size: 11px; }
</style>
</head>
<body>
`)
	b.WriteString("<h1>Transaction Report</h1>\n")
	fmt.Fprintf(&b, "<p>Period: %s to %s</p>\n", fromLabel, toLabel)

	b.WriteString("<div class=\"summary\">\n<h2>Summary</h2>\n")
	fmt.Fprintf(&b, "<p>Income: %s</p>\n", formatAmount(sum.Income, false))
	fmt.Fprintf(&b, "<p>Expenses: %s</p>\n", formatAmount(sum.Expense, false))
	fmt.Fprintf(&b, "<p>Net Balance: %s</p>\n", formatAmount(sum.Net, true))
	b.WriteString("</div>\n")

	b.WriteString("<table>\n<thead>\n<tr><th>Date</th><th>Description</th><th>Amount</th></tr>\n</thead>\n<tbody>\n")
	for _, txn := range rows {
		sign := "-"
		color := "red"
		if txn.Type == model.TypeIncome {
			sign = "+"
			color = "green"
		}
		fmt.Fprintf(&b,
			"<tr><td>%s</td><td>%s</td><td style=\"text-align: right; color: %s\">%s€%.2f</td></tr>\n",
			txn.Date.Format("02/01/2006"),
			html.EscapeString(txn.Description),
			color, sign, txn.Amount)
	}
	netColor := "green"
	if sum.Net < 0 {
		netColor = "red"
	}
	fmt.Fprintf(&b,
		"<tr class=\"total-row\"><td colspan=\"2\">Net Balance</td><td style=\"text-align: right; color: %s\">%s</td></tr>\n",
		netColor, formatAmount(sum.Net, true))
	b.WriteString("</tbody>\n</table>\n")

	fmt.Fprintf(&b, "<p class=\"footer\">Generated at %s</p>\n", now().Format("02/01/2006 15:04"))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// Summarize computes the totals Build would render, for callers that want the
// numbers without the document.
func Summarize(txns []model.Transaction, from, to *time.Time) Summary {
	lower := time.Unix(0, 0).UTC()
	if from != nil {
		lower = *from
	}
	upper := farFuture
	if to != nil {
		upper = *to
	}

	var sum Summary
	for _, txn := range txns {
		if txn.Date.Before(lower) || txn.Date.After(upper) {
			continue
		}
		if txn.Type == model.TypeIncome {
			sum.Income += txn.Amount
		} else {
			sum.Expense += txn.Amount
		}
		sum.Net += txn.SignedAmount()
	}
	return sum
}

func formatAmount(v float64, signed bool) string {
	if signed && v >= 0 {
		return fmt.Sprintf("+€%.2f", v)
	}
	if signed {
		return fmt.Sprintf("-€%.2f", -v)
	}
	return fmt.Sprintf("€%.2f", v)
}
