package handlers

import (
	"time"

	"expense_tracker/internal/logger"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultDashboardInterval = 2 * time.Second

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services          *service.Service
	log               *logger.Logger
	dashboardInterval time.Duration
}

// Option tunes a Handler.
type Option func(*Handler)

// WithDashboardInterval sets the default push period of the websocket dashboard.
func WithDashboardInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.dashboardInterval = d
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, dashboardInterval: defaultDashboardInterval}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdentity)
	{
		h.registerExpenseRoutes(api)
		api.GET("/categories", h.listCategories)
		// Live dashboard over WebSocket (HTTP upgrade) on the same port
		api.GET("/ws", h.wsDashboard)
	}
}

func (h *Handler) registerExpenseRoutes(api *gin.RouterGroup) {
	expenses := api.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		// Body example: {"date":"2024-01-05","category":"Food","description":"lunch","amount":"12.50"}
		expenses.POST("", h.addExpense)
		expenses.GET("/summary", h.getSummary)
		expenses.GET("/export", h.exportExpenses)
	}
}

// reqLog returns the request-scoped logger, or nil when logging is off.
func (h *Handler) reqLog(c *gin.Context) *logger.Logger {
	if h.log == nil {
		return nil
	}
	if id := c.GetString(ctxRequestID); id != "" {
		return h.log.With("request_id", id)
	}
	return h.log
}
