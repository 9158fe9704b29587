package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"expense_tracker/internal/repository/db"
)

// Runs the repository against a real on-disk SQLite file.
func TestUserRepository_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	sqlDB, err := db.InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer sqlDB.Close()

	repo := NewUserRepository(sqlDB)
	ctx := context.Background()

	if err := repo.Create(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if err := repo.Create(ctx, "alice", "hash-2"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("second Create: expected ErrDuplicateUsername, got %v", err)
	}
	// usernames are case-sensitive
	if err := repo.Create(ctx, "Alice", "hash-3"); err != nil {
		t.Fatalf("Create Alice: %v", err)
	}

	u, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u == nil || u.PasswordHash != "hash-1" {
		t.Fatalf("duplicate insert must not overwrite: got %+v", u)
	}

	missing, err := repo.GetByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", missing, err)
	}

	// reopening reuses the existing table
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	reopened, err := db.InitDB(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	u, err = NewUserRepository(reopened).GetByUsername(ctx, "Alice")
	if err != nil || u == nil || u.PasswordHash != "hash-3" {
		t.Fatalf("after reopen: got (%+v, %v)", u, err)
	}
}
