package handlers

import (
	"errors"
	"net/http"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusCreated = "created"

	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// respondError maps a service error onto an HTTP status. Storage and other
// unexpected failures are logged and reported without detail.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	code, msg := http.StatusInternalServerError, errInternal
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrUsernameTaken):
		code, msg = http.StatusConflict, service.ErrUsernameTaken.Error()
	case errors.Is(err, service.ErrAuthenticationFailed):
		code, msg = http.StatusUnauthorized, service.ErrAuthenticationFailed.Error()
	}

	if log := h.reqLog(c); log != nil {
		fields := append([]interface{}{"err", err, "status", code}, kv...)
		if code >= http.StatusInternalServerError {
			log.Errorw(logKey, fields...)
		} else {
			log.Infow(logKey, fields...)
		}
	}
	c.JSON(code, gin.H{"error": msg})
}
