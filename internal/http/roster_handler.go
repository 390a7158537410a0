package http

import (
	"encoding/json"
	"net/http"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/logger"
)

// RosterHandler imports spreadsheet rows into either roster
type RosterHandler struct {
	roster domain.RosterService
	logger logger.Logger
}

func NewRosterHandler(roster domain.RosterService, logger logger.Logger) *RosterHandler {
	return &RosterHandler{
		roster: roster,
		logger: logger,
	}
}

type importRosterRequest struct {
	UserID string            `json:"userId"`
	Kind   string            `json:"kind"`
	Items  []json.RawMessage `json:"items"`
}

func (h *RosterHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/roster/import", h.handleImport)
	// path used by the spreadsheet migration tool
	mux.HandleFunc("POST /api/migrate", h.handleImport)
}

func (h *RosterHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importRosterRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to import roster")
		return
	}

	if err := h.roster.Import(r.Context(), req.UserID, req.Kind, req.Items); err != nil {
		writeServiceError(w, h.logger.WithFields(map[string]interface{}{
			"user_id": req.UserID,
			"kind":    req.Kind,
		}), err, "Failed to import roster")
		return
	}

	writeOK(w, "")
}
