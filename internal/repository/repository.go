package repository

import (
	"context"
	"database/sql"
	"errors"

	"expense_tracker/internal/models"
)

// ErrDuplicateUsername is returned by Authorization.Create when the username already exists.
var ErrDuplicateUsername = errors.New("username already exists")

type Authorization interface {
	Create(ctx context.Context, username, hash string) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// LedgerStore persists a user's full expense sequence. Save replaces it wholesale.
type LedgerStore interface {
	Load(ctx context.Context, username string) ([]models.Expense, error)
	Save(ctx context.Context, username string, records []models.Expense) error
}

type Repository struct {
	Auth   Authorization
	Ledger LedgerStore
}

func NewRepository(db *sql.DB, ledgerDir string) *Repository {
	return &Repository{
		Auth:   NewUserRepository(db),
		Ledger: NewLedgerFiles(ledgerDir),
	}
}
