package errors

import (
	"encoding/json"
	"net/http"

	"github.com/gokatarajesh/trivia-api/internal/apperror"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes a standardized error response to the HTTP response writer.
// An empty message falls back to the default text for the status.
func RespondError(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = DefaultMessage(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondErr classifies err and writes the matching error response. It returns
// the status written so callers can decide how loudly to log.
func RespondErr(w http.ResponseWriter, err error) int {
	status := StatusFor(apperror.KindOf(err))
	RespondError(w, status, apperror.MessageOf(err))
	return status
}

// RespondBadRequest writes a bad request error response
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a not found error response
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondMethodNotAllowed writes a method not allowed error response
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, "")
}

// RespondInternalError writes an internal server error response
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "")
}
