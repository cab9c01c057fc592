package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tierSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"tier_id": {"type": "string", "minLength": 1},
		"weight": {"type": "number", "minimum": 0}
	},
	"required": ["tier_id"]
}`

func newTestValidator() SchemaValidator {
	return NewSchemaValidator(fstest.MapFS{
		"tier.schema.json":   {Data: []byte(tierSchema)},
		"broken.schema.json": {Data: []byte(`{"type": `)},
	})
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid data",
			data: `{"tier_id": "IncreasedLife1", "weight": 1000}`,
		},
		{
			name: "valid data without optional field",
			data: `{"tier_id": "IncreasedLife1"}`,
		},
		{
			name:      "missing required field",
			data:      `{"weight": 25}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "constraint violation",
			data:      `{"tier_id": "IncreasedLife1", "weight": -5}`,
			wantError: true,
			errorMsg:  "/weight",
		},
		{
			name:      "invalid JSON",
			data:      `{"tier_id": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "tier.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := newTestValidator()

	t.Run("missing schema", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load schema")
	})

	t.Run("malformed schema", func(t *testing.T) {
		err := v.ValidateBytes([]byte(`{}`), "broken.schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse schema JSON")
	})
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := newTestValidator().(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"tier_id": "a"}`), "tier.schema.json"))
	require.NoError(t, v.ValidateBytes([]byte(`{"tier_id": "b"}`), "tier.schema.json"))
	assert.Len(t, v.schemas, 1)
}
