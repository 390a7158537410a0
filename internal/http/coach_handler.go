package http

import (
	"encoding/json"
	"net/http"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/http/middleware"
	"github.com/coachdesk/coachdesk/pkg/logger"
)

// CoachHandler serves two resources on /api/coaches. Requests carrying a
// userId work on that owner's imported coach roster; the others work on
// the coach directory used for assignments.
type CoachHandler struct {
	coaches domain.CoachService
	roster  domain.RosterService
	logger  logger.Logger
}

func NewCoachHandler(coaches domain.CoachService, roster domain.RosterService, logger logger.Logger) *CoachHandler {
	return &CoachHandler{
		coaches: coaches,
		roster:  roster,
		logger:  logger,
	}
}

type upsertCoachesRequest struct {
	UserID  string            `json:"userId"`
	Coaches []json.RawMessage `json:"coaches"`
}

type updateCoachRequest struct {
	UserID string          `json:"userId"`
	Coach  json.RawMessage `json:"coach"`
	domain.CoachUpdate
}

func (h *CoachHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/coaches", middleware.NoCache(http.HandlerFunc(h.handleList)))
	mux.HandleFunc("POST /api/coaches", h.handleUpsert)
	mux.HandleFunc("PUT /api/coaches", h.handleUpdate)
	mux.HandleFunc("DELETE /api/coaches", h.handleDelete)
}

func (h *CoachHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if userID := r.URL.Query().Get("userId"); userID != "" {
		entries, err := h.roster.List(r.Context(), domain.RosterKindCoaches, userID)
		if err != nil {
			writeServiceError(w, h.logger.WithField("user_id", userID), err, "Failed to fetch coaches")
			return
		}
		writeList(w, entries, len(entries))
		return
	}

	coaches, err := h.coaches.ListCoaches(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch coaches")
		return
	}

	writeList(w, coaches, len(coaches))
}

func (h *CoachHandler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	var req upsertCoachesRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to save coaches")
		return
	}

	if req.UserID != "" {
		inserted, err := h.roster.InsertMany(r.Context(), domain.RosterKindCoaches, req.UserID, req.Coaches)
		if err != nil {
			writeServiceError(w, h.logger.WithField("user_id", req.UserID), err, "Failed to save coaches")
			return
		}
		writeList(w, inserted, len(inserted))
		return
	}

	inputs := make([]domain.CoachInput, 0, len(req.Coaches))
	for _, raw := range req.Coaches {
		var in domain.CoachInput
		if err := json.Unmarshal(raw, &in); err != nil {
			WriteJSONError(w, "each coach must be an object with name and email", http.StatusBadRequest)
			return
		}
		inputs = append(inputs, in)
	}

	inserted, err := h.coaches.UpsertCoaches(r.Context(), inputs)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to save coaches")
		return
	}

	writeList(w, inserted, len(inserted))
}

func (h *CoachHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateCoachRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update coach")
		return
	}

	if req.UserID != "" {
		if err := h.roster.Update(r.Context(), domain.RosterKindCoaches, req.UserID, req.Coach); err != nil {
			writeServiceError(w, h.logger.WithField("user_id", req.UserID), err, "Failed to update coach")
			return
		}
		writeOK(w, "")
		return
	}

	coach, err := h.coaches.UpdateCoach(r.Context(), req.CoachUpdate)
	if err != nil {
		writeServiceError(w, h.logger.WithField("coach_id", req.ID), err, "Failed to update coach")
		return
	}

	writeData(w, coach)
}

func (h *CoachHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	id := query.Get("id")

	if userID := query.Get("userId"); userID != "" {
		if err := h.roster.Delete(r.Context(), domain.RosterKindCoaches, userID, id); err != nil {
			writeServiceError(w, h.logger.WithField("user_id", userID), err, "Failed to delete coach")
			return
		}
		writeOK(w, "")
		return
	}

	if err := h.coaches.DeleteCoach(r.Context(), id); err != nil {
		writeServiceError(w, h.logger.WithField("coach_id", id), err, "Failed to delete coach")
		return
	}

	writeOK(w, "")
}
