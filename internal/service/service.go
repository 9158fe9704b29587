package service

import (
	"context"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, password string) error
	Verify(ctx context.Context, username, password string) (bool, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Ledger exposes a user's expense records. Append rewrites the whole ledger.
type Ledger interface {
	Load(ctx context.Context, username string) ([]models.Expense, error)
	Append(ctx context.Context, username string, record models.Expense) ([]models.Expense, error)
}

// Service aggregates the sub-services handed to the HTTP layer.
type Service struct {
	Authorization
	Ledger
}

func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, auth),
		Ledger:        NewLedgerService(repos.Ledger),
	}
}
