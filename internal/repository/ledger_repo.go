package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"expense_tracker/internal/models"
)

// ErrInvalidUsername is returned when a username cannot name a ledger file.
var ErrInvalidUsername = errors.New("username is not a valid ledger name")

const (
	ledgerSuffix  = "_expenses.csv"
	ledgerDirPerm = 0o755
	ledgerPerm    = 0o644
)

// LedgerFiles keeps one CSV file per user under dir.
// There is no cross-process lock: concurrent Saves for one user are last-writer-wins.
type LedgerFiles struct {
	dir string
}

func NewLedgerFiles(dir string) *LedgerFiles {
	return &LedgerFiles{dir: dir}
}

var _ LedgerStore = (*LedgerFiles)(nil)

// Path returns <dir>/<username>_expenses.csv.
func (s *LedgerFiles) Path(username string) (string, error) {
	if !models.ValidUsername(username) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return filepath.Join(s.dir, username+ledgerSuffix), nil
}

// Load returns the stored ledger, or an empty one if the user has no file yet.
func (s *LedgerFiles) Load(ctx context.Context, username string) ([]models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.Path(username)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make([]models.Expense, 0), nil
		}
		return nil, fmt.Errorf("read ledger %q: %w", path, err)
	}
	records, err := DecodeLedger(data)
	if err != nil {
		return nil, fmt.Errorf("decode ledger %q: %w", path, err)
	}
	return records, nil
}

// Save overwrites the user's ledger with records. The content is written to
// a temp file in the same directory and renamed into place.
func (s *LedgerFiles) Save(ctx context.Context, username string, records []models.Expense) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.Path(username)
	if err != nil {
		return err
	}
	data, err := EncodeLedger(records)
	if err != nil {
		return fmt.Errorf("encode ledger for %q: %w", username, err)
	}
	if err := os.MkdirAll(s.dir, ledgerDirPerm); err != nil {
		return fmt.Errorf("create ledger dir %q: %w", s.dir, err)
	}
	return writeFileReplace(path, data)
}

func writeFileReplace(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %q: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %q: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %q: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), ledgerPerm); err != nil {
		return fmt.Errorf("chmod %q: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}
	return nil
}
