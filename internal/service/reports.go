package service

import (
	"slices"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"github.com/shopspring/decimal"
)

// SortedByDateDescending returns a copy of records, newest first. Rows with
// the same date keep their ledger order.
func SortedByDateDescending(records []models.Expense) []models.Expense {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b models.Expense) int {
		return b.Date.Compare(a.Date.Time)
	})
	return out
}

// AggregateByCategory sums amounts per category. Categories without records are absent.
func AggregateByCategory(records []models.Expense) map[models.Category]decimal.Decimal {
	totals := make(map[models.Category]decimal.Decimal)
	for _, e := range records {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// AggregateByMonth sums amounts per calendar month, oldest month first.
func AggregateByMonth(records []models.Expense) []models.MonthTotal {
	sums := make(map[models.YearMonth]decimal.Decimal)
	for _, e := range records {
		ym := e.Date.YearMonth()
		sums[ym] = sums[ym].Add(e.Amount)
	}

	out := make([]models.MonthTotal, 0, len(sums))
	for ym, total := range sums {
		out = append(out, models.MonthTotal{Month: ym, Total: total})
	}
	slices.SortFunc(out, func(a, b models.MonthTotal) int {
		switch {
		case a.Month.Before(b.Month):
			return -1
		case b.Month.Before(a.Month):
			return 1
		default:
			return 0
		}
	})
	return out
}

// ExportCSV serializes the full ledger, header included, in the on-disk format.
func ExportCSV(records []models.Expense) ([]byte, error) {
	return repository.EncodeLedger(records)
}

// Summarize builds the dashboard view of a ledger.
func Summarize(records []models.Expense) models.Summary {
	total := decimal.Zero
	for _, e := range records {
		total = total.Add(e.Amount)
	}
	return models.Summary{
		Count:      len(records),
		Total:      total,
		ByCategory: AggregateByCategory(records),
		ByMonth:    AggregateByMonth(records),
	}
}
