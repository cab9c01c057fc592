package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded into a pooled buffer before any header is written,
// so an encoding failure still produces a clean 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for engine errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidActionError   = "Unknown crafting action"
	ErrMsgInvalidItemError     = "Item is not valid"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgCatalogDataError     = "No modifiers are available for this item. Check its attribute type and item level."
	ErrMsgRequestCancelledErr  = "Request cancelled"
	ErrMsgRequestTooLargeError = "Request body too large"
)

// mapServiceErrorToUserMessage maps engine errors to HTTP status codes and
// messages the caller can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, ErrMsgInvalidActionError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrCatalogData):
		return http.StatusUnprocessableEntity, ErrMsgCatalogDataError
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, ErrMsgRequestTooLargeError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgRequestCancelledErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
