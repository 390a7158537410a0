package http

import (
	"context"
	"net/http"
	"time"

	"github.com/coachdesk/coachdesk/pkg/logger"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	version string
	logger  logger.Logger
}

func NewHealthHandler(db Pinger, version string, logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
		logger:  logger,
	}
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.WithField("error", err.Error()).Warn("Health check failed")
		writeJSON(w, http.StatusServiceUnavailable, response{Error: "database unavailable", Details: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Data: map[string]string{
			"status":  "ok",
			"version": h.version,
		},
	})
}
