package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/utils/rut"
)

const siiLookupSource = "tabla_local"

// siiAffiliations stands in for the SII web service, keyed by the digits of the RUT.
var siiAffiliations = map[string]domain.SIIAffiliation{
	"182094420": {AFPName: "MODELO", HealthInstitution: "FONASA"},
	"123456785": {AFPName: "HABITAT", HealthInstitution: "ISAPRE CONSALUD"},
	"111111111": {AFPName: "PROVIDA", HealthInstitution: "FONASA"},
	"165432878": {AFPName: "CAPITAL", HealthInstitution: "ISAPRE BANMEDICA"},
}

type siiService struct {
	BaseService
	table map[string]domain.SIIAffiliation
}

// NewSIIService creates the AFP lookup service over the built-in table.
func NewSIIService() portssvc.SIILookupSvc {
	return &siiService{table: siiAffiliations}
}

var _ portssvc.SIILookupSvc = (*siiService)(nil)

func (s *siiService) LookupAFP(ctx context.Context, input string) (*domain.SIIAffiliation, error) {
	digits := rut.DigitsOnly(input)
	if len(digits) < 2 {
		return nil, apperrors.NewValidationError("rut es requerido", nil)
	}

	affiliation, ok := s.table[digits]
	if !ok {
		s.LogDebug(ctx, "RUT not found in SII table", slog.String("rut", digits))
		return nil, fmt.Errorf("%w: affiliation for rut %s", apperrors.ErrNotFound, digits)
	}

	affiliation.RUT = rut.Format(digits)
	affiliation.Source = siiLookupSource
	return &affiliation, nil
}
