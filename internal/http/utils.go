package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coachdesk/coachdesk/internal/domain"
	"github.com/coachdesk/coachdesk/pkg/logger"
)

// response is the envelope of every API response
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
}

// WriteJSONError writes {"success": false, "error": message} with the given status code
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, response{Error: message})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

// writeList writes data along with the number of items
func writeList(w http.ResponseWriter, data interface{}, count int) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data, Count: &count})
}

func writeOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, response{Success: true, Message: message})
}

// writeServiceError maps domain errors to their status. Anything else is
// logged and answered with a 500 carrying fallback as error and the cause
// as details.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error, fallback string) {
	var (
		validation domain.ValidationError
		notFound   *domain.ErrNotFound
		conflict   *domain.ErrConflict
	)

	switch {
	case errors.As(err, &validation):
		WriteJSONError(w, validation.Message, http.StatusBadRequest)
	case errors.As(err, &notFound):
		WriteJSONError(w, notFound.Error(), http.StatusNotFound)
	case errors.As(err, &conflict):
		WriteJSONError(w, conflict.Error(), http.StatusConflict)
	default:
		log.WithField("error", err.Error()).Error(fallback)
		writeJSON(w, http.StatusInternalServerError, response{Error: fallback, Details: err.Error()})
	}
}

// decodeBody reads a JSON request body into v
func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("Invalid request body")
	}
	return nil
}
