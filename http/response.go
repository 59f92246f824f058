package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sagarc03/pawtrait"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a JSON error response
func WriteError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errCode,
		Message: message,
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError writes appropriate error response based on error type.
// Anything that is not a known validation error is treated as a storage
// collaborator failure and surfaced as 502.
func HandleError(w http.ResponseWriter, err error) {
	slog.Error("request error", "error", err)

	if errors.Is(err, pawtrait.ErrMissingFamilyID) {
		WriteError(w, http.StatusBadRequest, "missing_family_id", "Missing x-family-id header")
		return
	}

	if errors.Is(err, pawtrait.ErrMissingPhotoID) {
		WriteError(w, http.StatusBadRequest, "missing_photo_id", "Missing photoId")
		return
	}

	if errors.Is(err, pawtrait.ErrInvalidInput) {
		WriteError(w, http.StatusBadRequest, "invalid_input", "Invalid input")
		return
	}

	if errors.Is(err, pawtrait.ErrForbiddenFamily) {
		WriteError(w, http.StatusForbidden, "family_not_allowed", "Family is not allow-listed")
		return
	}

	if errors.Is(err, pawtrait.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "not_found", "Photo not found")
		return
	}

	WriteError(w, http.StatusBadGateway, "storage_error", "Storage backend unavailable")
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}
