package validation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	RUT    string   `json:"rut" binding:"required,rut"`
	Period string   `json:"period" binding:"omitempty,period"`
	Value  *float64 `json:"value" binding:"required,gte=0"`
	Kind   string   `json:"kind" binding:"omitempty,oneof=a b"`
}

func floatPtr(f float64) *float64 { return &f }

func TestRegisterCustomValidators_Idempotent(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())
	require.NoError(t, RegisterCustomValidators())
}

func TestViolations_CustomRules(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())

	err := binding.Validator.ValidateStruct(&sampleRequest{RUT: "18209442-1", Period: "202413", Value: floatPtr(-1), Kind: "c"})
	require.Error(t, err)

	violations := Violations(err)
	byField := map[string]FieldViolation{}
	for _, v := range violations {
		byField[v.Field] = v
	}

	assert.Equal(t, "rut", byField["rut"].Rule)
	assert.Equal(t, "period", byField["period"].Rule)
	assert.Equal(t, "gte", byField["value"].Rule)
	assert.Equal(t, "value debe ser mayor o igual a 0", byField["value"].Message)
	assert.Equal(t, "oneof", byField["kind"].Rule)
}

func TestViolations_ValidStruct(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())
	err := binding.Validator.ValidateStruct(&sampleRequest{RUT: "18.209.442-0", Period: "202403", Value: floatPtr(0)})
	assert.NoError(t, err)
}

func TestViolations_RequiredPointer(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())
	err := binding.Validator.ValidateStruct(&sampleRequest{RUT: "18209442-0"})
	require.Error(t, err)

	violations := Violations(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "value", violations[0].Field)
	assert.Equal(t, "value es requerido", violations[0].Message)
}

func TestViolations_DecodeErrors(t *testing.T) {
	var target sampleRequest
	typeErr := json.Unmarshal([]byte(`{"value":"abc"}`), &target)
	require.Error(t, typeErr)
	assert.Equal(t, "type", Violations(typeErr)[0].Rule)

	assert.Equal(t, "required", Violations(io.EOF)[0].Rule)
	assert.Equal(t, "format", Violations(errors.New("boom"))[0].Rule)
}

func TestFromBindingError(t *testing.T) {
	appErr := FromBindingError(io.EOF)
	assert.ErrorIs(t, appErr, apperrors.ErrValidation)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, InvalidDataMessage, appErr.Message)
}

func TestIsLocalPath(t *testing.T) {
	for _, good := range []string{"/", "/dashboard", "/companies/1?tab=payroll#top"} {
		assert.True(t, IsLocalPath(good), good)
	}
	for _, bad := range []string{"", "dashboard", "//evil.example/phish", "/\\evil.example", "https://evil.example", "/a\nb"} {
		assert.False(t, IsLocalPath(bad), bad)
	}
}
