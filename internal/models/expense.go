package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the fixed set an expense can be filed under.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryBills     Category = "Bills"
	CategoryShopping  Category = "Shopping"
	CategoryOther     Category = "Other"
)

// LedgerColumns is the canonical header of a ledger file, in order.
var LedgerColumns = []string{"Date", "Category", "Description", "Amount"}

var categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryBills,
	CategoryShopping,
	CategoryOther,
}

// Categories returns the allowed categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the known categories (case-sensitive).
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single ledger row.
type Expense struct {
	Date        Date            `json:"date"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// String formats as YYYY-MM.
func (ym YearMonth) String() string {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Before reports whether ym is chronologically earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// MarshalText lets YearMonth be used as a JSON value or map key.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// MonthTotal is one point of the monthly trend.
type MonthTotal struct {
	Month YearMonth       `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// Summary is the dashboard payload computed from a ledger.
type Summary struct {
	Count      int                          `json:"count"`
	Total      decimal.Decimal              `json:"total"`
	ByCategory map[Category]decimal.Decimal `json:"by_category"`
	ByMonth    []MonthTotal                 `json:"by_month"`
}
