package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

const amountPlaces = 2

type LedgerService struct {
	ledgerRepo repository.LedgerStore
}

func NewLedgerService(repo repository.LedgerStore) *LedgerService {
	return &LedgerService{ledgerRepo: repo}
}

// Load returns the user's ledger in stored order; never nil.
func (s *LedgerService) Load(ctx context.Context, username string) ([]models.Expense, error) {
	records, err := s.ledgerRepo.Load(ctx, username)
	if err != nil {
		return nil, mapLedgerErr("load ledger", err)
	}
	if records == nil {
		records = make([]models.Expense, 0)
	}
	return records, nil
}

// Append validates record, adds it after the existing rows and rewrites the
// full ledger. Concurrent appends for one user from separate processes can
// lose updates: the last completed overwrite wins.
func (s *LedgerService) Append(ctx context.Context, username string, record models.Expense) ([]models.Expense, error) {
	if err := validateExpense(record); err != nil {
		return nil, err
	}
	record.Date = models.DateOf(record.Date.Time)
	record.Amount = record.Amount.Round(amountPlaces)
	// CSV readers fold CRLF inside quoted fields to LF
	record.Description = strings.ReplaceAll(record.Description, "\r\n", "\n")

	records, err := s.Load(ctx, username)
	if err != nil {
		return nil, err
	}
	records = append(records, record)

	if err := s.ledgerRepo.Save(ctx, username, records); err != nil {
		return nil, mapLedgerErr("save ledger", err)
	}
	return records, nil
}

func validateExpense(e models.Expense) error {
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must be >= 0, got %s", ErrInvalidInput, e.Amount)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, e.Category)
	}
	return nil
}

func mapLedgerErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidUsername):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}
}
