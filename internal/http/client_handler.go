package http

import (
	"net/http"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/http/middleware"
	"github.com/coachdesk/coachdesk/pkg/logger"
)

type ClientHandler struct {
	clients     domain.ClientService
	assignments domain.AssignmentService
	logger      logger.Logger
}

func NewClientHandler(clients domain.ClientService, assignments domain.AssignmentService, logger logger.Logger) *ClientHandler {
	return &ClientHandler{
		clients:     clients,
		assignments: assignments,
		logger:      logger,
	}
}

func (h *ClientHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/clients", middleware.NoCache(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /api/clients/journey", middleware.NoCache(http.HandlerFunc(h.handleJourney)))
	mux.HandleFunc("PUT /api/clients/assign-coach", h.handleAssignCoach)
	mux.HandleFunc("PUT /api/clients/session-datetime", h.handleSessionDatetime)
}

func (h *ClientHandler) handleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch users")
		return
	}

	writeList(w, clients, len(clients))
}

func (h *ClientHandler) handleJourney(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.ListJourneyClients(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to fetch journey clients")
		return
	}

	writeList(w, clients, len(clients))
}

func (h *ClientHandler) handleAssignCoach(w http.ResponseWriter, r *http.Request) {
	var req domain.AssignCoachRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to assign coach")
		return
	}

	if req.IsUnassign() {
		if err := h.assignments.UnassignCoach(r.Context(), req.UserID); err != nil {
			writeServiceError(w, h.logger.WithField("user_id", req.UserID), err, "Failed to assign coach")
			return
		}
		writeOK(w, "Coach unassigned successfully")
		return
	}

	result, err := h.assignments.AssignCoach(r.Context(), req.UserID, *req.CoachID)
	if err != nil {
		writeServiceError(w, h.logger.WithFields(map[string]interface{}{
			"user_id":  req.UserID,
			"coach_id": *req.CoachID,
		}), err, "Failed to assign coach")
		return
	}

	writeData(w, result)
}

func (h *ClientHandler) handleSessionDatetime(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSessionDatetimeRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update session datetime")
		return
	}

	form, err := h.assignments.UpdateSessionDatetime(r.Context(), req.UserID, req.SessionDatetime)
	if err != nil {
		writeServiceError(w, h.logger.WithField("user_id", req.UserID), err, "Failed to update session datetime")
		return
	}

	writeData(w, form)
}
