package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		envelope Envelope
		want     map[string]any
	}{
		{
			name:     "data key",
			envelope: OK([]string{"a"}),
			want:     map[string]any{"success": true, "data": []any{"a"}},
		},
		{
			name:     "custom key with message",
			envelope: OKAs("company", map[string]string{"rut": "18209442-0"}).WithMessage("Empresa creada"),
			want: map[string]any{
				"success": true,
				"company": map[string]any{"rut": "18209442-0"},
				"message": "Empresa creada",
			},
		},
		{
			name:     "failure",
			envelope: Fail("Datos inválidos", "validation", []string{"rut"}),
			want: map[string]any{
				"success": false,
				"error":   "Datos inválidos",
				"kind":    "validation",
				"details": []any{"rut"},
			},
		},
		{
			name:     "nil payload is kept",
			envelope: OK(nil),
			want:     map[string]any{"success": true, "data": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.envelope)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
