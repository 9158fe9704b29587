package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// AuthConfig carries the token and hashing settings.
type AuthConfig struct {
	SigningKey []byte
	TokenTTL   time.Duration
	BcryptCost int
}

// AuthService handles signup, credential checks and session tokens.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
	cost       int

	// compared against when the user is unknown so both paths pay for bcrypt.
	// It uses the current cost: hashes stored under an older auth.bcrypt_cost
	// verify in different time, so the two paths are only alike while every
	// stored hash shares the configured cost.
	dummyHash func() []byte
}

func NewAuthService(repo repository.Authorization, cfg AuthConfig) *AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		authRepo:   repo,
		signingKey: cfg.SigningKey,
		tokenTTL:   ttl,
		cost:       cost,
		dummyHash: sync.OnceValue(func() []byte {
			h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
			return h
		}),
	}
}

// Register hashes password and stores a new credential for username.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if !models.ValidUsername(username) {
		return fmt.Errorf("%w: username %q contains forbidden characters", ErrInvalidInput, username)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}

	if err := s.authRepo.Create(ctx, username, hash); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// Verify reports whether password matches the stored hash for username.
// Unknown users and wrong passwords both yield false.
func (s *AuthService) Verify(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}

	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
		return false, nil
	}
	return verifyPassword(u.PasswordHash, password) == nil, nil
}

// Claims defines JWT claims; Subject holds the username.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken validates credentials and returns a signed session token.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	ok, err := s.Verify(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrAuthenticationFailed
	}
	return s.issueToken(strings.TrimSpace(username), time.Now())
}

// ParseToken parses a session token and returns the username it was issued for.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// helper: hash password with the configured bcrypt cost
func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(username string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(s.signingKey)
}
