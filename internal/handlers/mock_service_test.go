package handlers

import (
	"context"
	"net/http"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerErr   error
	verifyOK      bool
	verifyErr     error
	genTokenToken string
	genTokenErr   error
	parseUser     string
	parseErr      error

	lastRegisterUsername string
	lastRegisterPassword string
	lastGenUsername      string
	lastGenPassword      string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, username, password string) error {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerErr
}
func (m *mockAuth) Verify(ctx context.Context, username, password string) (bool, error) {
	return m.verifyOK, m.verifyErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseUser, m.parseErr
}

type mockLedger struct {
	records   []models.Expense
	loadErr   error
	appendErr error

	lastUsername string
	appended     []models.Expense
}

func (m *mockLedger) Load(ctx context.Context, username string) ([]models.Expense, error) {
	m.lastUsername = username
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]models.Expense, len(m.records))
	copy(out, m.records)
	return out, nil
}
func (m *mockLedger) Append(ctx context.Context, username string, e models.Expense) ([]models.Expense, error) {
	m.lastUsername = username
	if m.appendErr != nil {
		return nil, m.appendErr
	}
	m.appended = append(m.appended, e)
	m.records = append(m.records, e)
	return m.Load(ctx, username)
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

var _ service.Authorization = (*mockAuth)(nil)
var _ service.Ledger = (*mockLedger)(nil)
