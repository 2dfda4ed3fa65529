package services_test

import (
	"context"
	"testing"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIIService_LookupAFP(t *testing.T) {
	svc := services.NewSIIService()
	ctx := context.Background()

	for _, input := range []string{"18209442-0", "18.209.442-0", "182094420"} {
		t.Run(input, func(t *testing.T) {
			aff, err := svc.LookupAFP(ctx, input)
			require.NoError(t, err)
			assert.Equal(t, "MODELO", aff.AFPName)
			assert.Equal(t, "FONASA", aff.HealthInstitution)
			assert.Equal(t, "18.209.442-0", aff.RUT)
			assert.Equal(t, "tabla_local", aff.Source)
		})
	}

	_, err := svc.LookupAFP(ctx, "99999999-9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.LookupAFP(ctx, "-")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
