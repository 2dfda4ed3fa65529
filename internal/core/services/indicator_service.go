package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const manualIndicatorSource = "manual"

// indicatorService implements the IndicatorSvcFacade interface
type indicatorService struct {
	BaseService
	indicatorRepo portsrepo.IndicatorRepositoryFacade
	now           func() time.Time
}

// NewIndicatorService creates a new economic indicator service
func NewIndicatorService(indicatorRepo portsrepo.IndicatorRepositoryFacade) portssvc.IndicatorSvcFacade {
	return &indicatorService{indicatorRepo: indicatorRepo, now: time.Now}
}

var _ portssvc.IndicatorSvcFacade = (*indicatorService)(nil)

// NormalizeIndicatorCode lower-cases code and reports whether it is a known indicator.
func NormalizeIndicatorCode(code string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	_, ok := domain.IndicatorCatalog[c]
	return c, ok
}

func (s *indicatorService) GetIndicatorsDashboard(ctx context.Context) ([]domain.EconomicIndicator, error) {
	indicators, err := s.indicatorRepo.ListLatestIndicators(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load indicators dashboard")
		return nil, err
	}
	if indicators == nil {
		return []domain.EconomicIndicator{}, nil
	}
	return indicators, nil
}

func (s *indicatorService) GetIndicatorHistory(ctx context.Context, params dto.ListIndicatorsParams) ([]domain.EconomicIndicator, *string, error) {
	code, ok := NormalizeIndicatorCode(params.Code)
	if !ok {
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf("Indicador desconocido: %s", params.Code), nil)
	}

	var before *time.Time
	if params.NextToken != nil && *params.NextToken != "" {
		date, err := pagination.DecodeDateCursor(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("next_token inválido", nil)
		}
		before = &date
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 30
	}
	values, err := s.indicatorRepo.ListIndicatorHistory(ctx, code, limit+1, before)
	if err != nil {
		s.LogError(ctx, err, "Failed to load indicator history", slog.String("code", code))
		return nil, nil, err
	}

	var next *string
	if len(values) > limit {
		values = values[:limit]
		token := pagination.EncodeDateCursor(values[limit-1].Date)
		next = &token
	}
	if values == nil {
		values = []domain.EconomicIndicator{}
	}
	return values, next, nil
}

func (s *indicatorService) UpdateIndicatorValue(ctx context.Context, req dto.UpdateIndicatorRequest) (*domain.EconomicIndicator, error) {
	code, ok := NormalizeIndicatorCode(req.Code)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Indicador desconocido: %s", req.Code), nil)
	}
	if req.Value == nil || *req.Value < 0 {
		return nil, apperrors.NewValidationError("value debe ser un número mayor o igual a 0", nil)
	}

	now := s.now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date debe tener el formato YYYY-MM-DD", nil)
		}
		date = parsed
	}

	meta := domain.IndicatorCatalog[code]
	indicator := domain.EconomicIndicator{
		Code:      code,
		Name:      meta.Name,
		Value:     decimal.NewFromFloat(*req.Value),
		Date:      date,
		Unit:      meta.Unit,
		Source:    manualIndicatorSource,
		UpdatedAt: now,
	}

	if err := s.indicatorRepo.UpsertIndicator(ctx, indicator); err != nil {
		s.LogError(ctx, err, "Failed to upsert indicator", slog.String("code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Indicator value updated",
		slog.String("code", code),
		slog.String("date", date.Format(time.DateOnly)),
		slog.String("value", indicator.Value.String()))
	return &indicator, nil
}

func (s *indicatorService) SyncIndicators(ctx context.Context, values []domain.EconomicIndicator) (int, error) {
	known := make([]domain.EconomicIndicator, 0, len(values))
	for _, v := range values {
		code, ok := NormalizeIndicatorCode(v.Code)
		if !ok || v.Value.IsNegative() {
			s.LogDebug(ctx, "Skipping indicator value", slog.String("code", v.Code))
			continue
		}
		meta := domain.IndicatorCatalog[code]
		v.Code = code
		if v.Name == "" {
			v.Name = meta.Name
		}
		if v.Unit == "" {
			v.Unit = meta.Unit
		}
		if v.UpdatedAt.IsZero() {
			v.UpdatedAt = s.now()
		}
		known = append(known, v)
	}

	if err := s.indicatorRepo.UpsertIndicators(ctx, known); err != nil {
		s.LogError(ctx, err, "Failed to store synced indicators", slog.Int("count", len(known)))
		return 0, err
	}
	return len(known), nil
}
