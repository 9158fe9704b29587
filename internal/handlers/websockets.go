package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"expense_tracker/internal/logger"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	maxInterval      = time.Minute
	maxIntervalMilli = 60_000

	wsTypeSummary = "summary"
	wsTypeError   = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live dashboard
// @Description  WebSocket upgrade. Pushes {"type":"summary","data":...} immediately and then every interval (?interval=5s or ?interval_ms=5000).
// @Tags         expenses
// @Router       /api/v1/ws [get]
// @Security     BearerAuth
func (h *Handler) wsDashboard(c *gin.Context) {
	interval := h.parseInterval(c)
	username := currentUser(c)
	log := h.reqLog(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if log != nil {
			log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendSummary(ctx, conn, username, log); err != nil {
		if log != nil {
			log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if log != nil {
					log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendSummary(ctx, conn, username, log); err != nil {
				if log != nil {
					log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds,
// falling back to the configured dashboard interval.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return h.dashboardInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// sendSummary recomputes the caller's summary and writes it. A storage
// failure is reported to the client as an error envelope and ends the stream.
func (h *Handler) sendSummary(ctx context.Context, conn *websocket.Conn, username string, log *logger.Logger) error {
	records, err := h.services.Ledger.Load(ctx, username)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		if log != nil {
			log.Errorw("ws_ledger_load_failed", "username", username, "err", err)
		}
		_ = conn.WriteJSON(wsEnvelope{Type: wsTypeError, Error: errInternal})
		return err
	}
	return conn.WriteJSON(wsEnvelope{Type: wsTypeSummary, Data: service.Summarize(records)})
}
