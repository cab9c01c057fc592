package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid action", fmt.Errorf("unknown action %q: %w", "x", domain.ErrInvalidAction), http.StatusBadRequest, ErrMsgInvalidActionError},
		{"invalid input", fmt.Errorf("plan: %w", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidInputError},
		{"catalog data", fmt.Errorf("episode 3: %w", domain.ErrCatalogData), http.StatusUnprocessableEntity, ErrMsgCatalogDataError},
		{"invariant violation", domain.ErrInvariantViolation, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"body too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLargeError},
		{"cancelled", fmt.Errorf("run: %w", context.Canceled), http.StatusServiceUnavailable, ErrMsgRequestCancelledErr},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"`+ErrMsgGenericServerError+`"}`, w.Body.String())
}
