package repository

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"expense_tracker/internal/models"

	"github.com/shopspring/decimal"
)

// ErrCorruptLedger marks ledger content that cannot be decoded.
var ErrCorruptLedger = errors.New("corrupt ledger")

const minAmountPlaces = 2

// Older ledgers may carry a time component in the Date column.
var dateLayouts = []string{
	models.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// EncodeLedger renders records as CSV with the canonical header row.
// A CRLF inside a field is read back as LF.
func EncodeLedger(records []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(models.LedgerColumns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, e := range records {
		row := []string{
			e.Date.String(),
			string(e.Category),
			e.Description,
			formatAmount(e.Amount),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeLedger parses CSV produced by EncodeLedger (or the legacy tool).
// Empty input decodes to an empty ledger.
func DecodeLedger(data []byte) ([]models.Expense, error) {
	out := make([]models.Expense, 0)
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(models.LedgerColumns)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrCorruptLedger, err)
	}
	// strip UTF-8 BOM
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	if !slices.Equal(header, models.LedgerColumns) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrCorruptLedger, header)
	}

	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
		}
		e, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptLedger, line, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeRow(row []string) (models.Expense, error) {
	date, err := parseLedgerDate(strings.TrimSpace(row[0]))
	if err != nil {
		return models.Expense{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return models.Expense{}, fmt.Errorf("amount %q: %w", row[3], err)
	}
	return models.Expense{
		Date:        date,
		Category:    models.Category(row[1]),
		Description: row[2],
		Amount:      amount,
	}, nil
}

func parseLedgerDate(s string) (models.Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DateOf(t), nil
		}
	}
	return models.Date{}, fmt.Errorf("date %q is not YYYY-MM-DD", s)
}

// formatAmount uses at least two decimals and never drops precision.
func formatAmount(d decimal.Decimal) string {
	places := int32(minAmountPlaces)
	if exp := -d.Exponent(); exp > places {
		places = exp
	}
	return d.StringFixed(places)
}
