package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rsnyderaustin/poe-craftsim/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates
// it. On failure the error response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req EnumerateRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Enumerate"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		if status == http.StatusInternalServerError {
			status, msg = http.StatusBadRequest, ErrMsgInvalidRequest
		}
		respondError(w, status, msg)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}
