package http

import (
	"encoding/json"
	"net/http"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/http/middleware"
	"github.com/coachdesk/coachdesk/pkg/logger"
)

// PeopleHandler serves the people roster of an owner
type PeopleHandler struct {
	roster domain.RosterService
	logger logger.Logger
}

func NewPeopleHandler(roster domain.RosterService, logger logger.Logger) *PeopleHandler {
	return &PeopleHandler{
		roster: roster,
		logger: logger,
	}
}

type insertPeopleRequest struct {
	UserID string            `json:"userId"`
	People []json.RawMessage `json:"people"`
}

type updatePersonRequest struct {
	UserID string          `json:"userId"`
	Person json.RawMessage `json:"person"`
}

func (h *PeopleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/people", middleware.NoCache(http.HandlerFunc(h.handleList)))
	mux.HandleFunc("POST /api/people", h.handleInsert)
	mux.HandleFunc("PUT /api/people", h.handleUpdate)
	mux.HandleFunc("DELETE /api/people", h.handleDelete)
}

func (h *PeopleHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	people, err := h.roster.List(r.Context(), domain.RosterKindPeople, userID)
	if err != nil {
		writeServiceError(w, h.logger.WithField("user_id", userID), err, "Failed to fetch people")
		return
	}

	writeList(w, people, len(people))
}

func (h *PeopleHandler) handleInsert(w http.ResponseWriter, r *http.Request) {
	var req insertPeopleRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to save people")
		return
	}

	inserted, err := h.roster.InsertMany(r.Context(), domain.RosterKindPeople, req.UserID, req.People)
	if err != nil {
		writeServiceError(w, h.logger.WithField("user_id", req.UserID), err, "Failed to save people")
		return
	}

	writeList(w, inserted, len(inserted))
}

func (h *PeopleHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updatePersonRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update person")
		return
	}

	if err := h.roster.Update(r.Context(), domain.RosterKindPeople, req.UserID, req.Person); err != nil {
		writeServiceError(w, h.logger.WithField("user_id", req.UserID), err, "Failed to update person")
		return
	}

	writeOK(w, "")
}

func (h *PeopleHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")

	if err := h.roster.Delete(r.Context(), domain.RosterKindPeople, userID, query.Get("id")); err != nil {
		writeServiceError(w, h.logger.WithField("user_id", userID), err, "Failed to delete person")
		return
	}

	writeOK(w, "")
}
