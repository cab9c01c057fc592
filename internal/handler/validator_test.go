package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

func TestValidateAction(t *testing.T) {
	type request struct {
		Action domain.ActionID `json:"action" validate:"required,action"`
	}

	tests := []struct {
		name   string
		action domain.ActionID
		valid  bool
	}{
		{"chaos orb", domain.ActionChaos, true},
		{"whetstone", domain.ActionBlacksmithsWhetstone, true},
		{"unknown", "orb_of_chance", false},
		{"case sensitive", "Chaos_Orb", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(request{Action: tt.action})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatValidationError_UsesJSONNames(t *testing.T) {
	err := GetValidator().ValidateStruct(BatchRequest{
		Actions:   []domain.ActionID{"orb_of_chance"},
		Episodes:  0,
		KeepItems: true,
	})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, map[string]string{
		"item":       "This field is required",
		"episodes":   "This field is required",
		"actions[0]": `Unknown action "orb_of_chance"`,
	}, fields)
}

func TestFormatValidationError_EmptySequence(t *testing.T) {
	err := GetValidator().ValidateStruct(BatchRequest{
		Item:     &domain.ItemState{},
		Actions:  []domain.ActionID{},
		Episodes: 1,
	})
	require.Error(t, err)

	assert.Equal(t, "Must contain at least 1 entries", FormatValidationError(err)["actions"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
