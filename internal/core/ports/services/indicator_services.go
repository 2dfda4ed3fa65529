package services

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
)

// IndicatorReaderSvc defines read operations for economic indicators
type IndicatorReaderSvc interface {
	// GetIndicatorsDashboard returns the latest value of every indicator.
	GetIndicatorsDashboard(ctx context.Context) ([]domain.EconomicIndicator, error)

	// GetIndicatorHistory returns a page of one indicator's values, newest first.
	GetIndicatorHistory(ctx context.Context, params dto.ListIndicatorsParams) ([]domain.EconomicIndicator, *string, error)
}

// IndicatorWriterSvc defines write operations for economic indicators
type IndicatorWriterSvc interface {
	// UpdateIndicatorValue upserts a value for (code, date). Unknown codes and negative values are rejected.
	UpdateIndicatorValue(ctx context.Context, req dto.UpdateIndicatorRequest) (*domain.EconomicIndicator, error)

	// SyncIndicators upserts values fetched from an external source.
	SyncIndicators(ctx context.Context, values []domain.EconomicIndicator) (int, error)
}

// IndicatorSvcFacade combines all indicator service interfaces
type IndicatorSvcFacade interface {
	IndicatorReaderSvc
	IndicatorWriterSvc
}
