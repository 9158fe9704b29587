package handlers

import (
	"mime"
	"net/http"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const csvContentType = "text/csv; charset=utf-8"

// Request DTO for adding an expense. Date defaults to today (UTC).
type expenseRequest struct {
	Date        *models.Date     `json:"date"`
	Category    models.Category  `json:"category" binding:"required"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
}

// AddExpenseRequest is an exported model for Swagger docs of the addExpense payload.
type AddExpenseRequest struct {
	// Calendar date, YYYY-MM-DD. Defaults to today.
	Date string `json:"date,omitempty" example:"2024-01-05"`
	// One of Food, Transport, Bills, Shopping, Other
	Category    string `json:"category" example:"Food"`
	Description string `json:"description,omitempty" example:"lunch"`
	// Non-negative, two decimals
	Amount string `json:"amount" example:"12.50"`
}

// @Summary      List expenses
// @Description  The caller's ledger, newest first.
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, expenses"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/expenses [get]
// @Security     BearerAuth
func (h *Handler) listExpenses(c *gin.Context) {
	username := currentUser(c)
	records, err := h.services.Ledger.Load(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err, "ledger_load_failed", "username", username)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(records),
		"expenses": service.SortedByDateDescending(records),
	})
}

// @Summary      Add expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body      AddExpenseRequest  true  "Expense"
// @Success      201   {object}  map[string]interface{}  "count, expense"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/expenses [post]
// @Security     BearerAuth
func (h *Handler) addExpense(c *gin.Context) {
	var req expenseRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	record := models.Expense{
		Date:        models.DateOf(time.Now().UTC()),
		Category:    req.Category,
		Description: req.Description,
		Amount:      *req.Amount,
	}
	if req.Date != nil {
		record.Date = *req.Date
	}

	username := currentUser(c)
	records, err := h.services.Ledger.Append(c.Request.Context(), username, record)
	if err != nil {
		h.respondError(c, err, "ledger_append_failed", "username", username)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"count":   len(records),
		"expense": records[len(records)-1],
	})
}

// @Summary      Expense summary
// @Description  Totals by category and by month (chronological).
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/expenses/summary [get]
// @Security     BearerAuth
func (h *Handler) getSummary(c *gin.Context) {
	username := currentUser(c)
	records, err := h.services.Ledger.Load(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err, "ledger_summary_failed", "username", username)
		return
	}
	c.JSON(http.StatusOK, service.Summarize(records))
}

// @Summary      Download expenses
// @Tags         expenses
// @Produce      text/csv
// @Success      200  {string}  string  "CSV with header Date,Category,Description,Amount"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/expenses/export [get]
// @Security     BearerAuth
func (h *Handler) exportExpenses(c *gin.Context) {
	username := currentUser(c)
	records, err := h.services.Ledger.Load(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err, "ledger_export_failed", "username", username)
		return
	}
	data, err := service.ExportCSV(records)
	if err != nil {
		h.respondError(c, err, "ledger_export_encode_failed", "username", username)
		return
	}
	c.Header("Content-Disposition", attachmentDisposition(username+"_expenses.csv"))
	c.Data(http.StatusOK, csvContentType, data)
}

// attachmentDisposition quotes or RFC 2231-encodes filename as needed.
func attachmentDisposition(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}

// @Summary      List categories
// @Tags         expenses
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/categories [get]
// @Security     BearerAuth
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories()})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
