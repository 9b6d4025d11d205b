package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"romarchive/internal/shared"
)

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError maps a service error to an HTTP status. Invalid
// input and missing entities surface with their real messages; anything
// else is a storage fault that gets logged and hidden behind a generic 500.
func (h *Handlers) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *shared.NotFoundError
	switch {
	case errors.As(err, &notFound):
		respondWithError(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, shared.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.Log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
