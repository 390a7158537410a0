package http

import (
	"net/http"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/internal/http/middleware"
	"github.com/coachdesk/coachdesk/pkg/logger"
)

type MappingHandler struct {
	service domain.MappingService
	logger  logger.Logger
}

func NewMappingHandler(service domain.MappingService, logger logger.Logger) *MappingHandler {
	return &MappingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *MappingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/mappings", middleware.NoCache(http.HandlerFunc(h.handleList)))
	mux.HandleFunc("POST /api/mappings", h.handleUpsert)
	mux.HandleFunc("DELETE /api/mappings", h.handleDelete)
}

func (h *MappingHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	mappings, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger.WithField("user_id", userID), err, "Failed to fetch mappings")
		return
	}

	writeList(w, mappings, len(mappings))
}

func (h *MappingHandler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	var req domain.UpsertMappingRequest
	if err := decodeBody(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "Failed to save mapping")
		return
	}

	if err := h.service.Upsert(r.Context(), req); err != nil {
		writeServiceError(w, h.logger.WithField("user_id", req.UserID), err, "Failed to save mapping")
		return
	}

	writeOK(w, "")
}

func (h *MappingHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")

	if err := h.service.Delete(r.Context(), userID, query.Get("personId")); err != nil {
		writeServiceError(w, h.logger.WithField("user_id", userID), err, "Failed to delete mapping")
		return
	}

	writeOK(w, "")
}
