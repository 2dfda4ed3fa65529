package repositories

import (
	"context"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
)

// IndicatorReader defines read operations for economic indicators
type IndicatorReader interface {
	// ListLatestIndicators returns the most recent value of every indicator code.
	ListLatestIndicators(ctx context.Context) ([]domain.EconomicIndicator, error)

	// ListIndicatorHistory returns values of one code, newest first, strictly before `before` when set.
	ListIndicatorHistory(ctx context.Context, code string, limit int, before *time.Time) ([]domain.EconomicIndicator, error)
}

// IndicatorWriter defines write operations for economic indicators
type IndicatorWriter interface {
	// UpsertIndicator inserts or replaces the value for (code, date).
	UpsertIndicator(ctx context.Context, indicator domain.EconomicIndicator) error

	// UpsertIndicators applies UpsertIndicator for every item in a single batch.
	UpsertIndicators(ctx context.Context, indicators []domain.EconomicIndicator) error
}

// IndicatorRepositoryFacade combines all indicator repository interfaces
type IndicatorRepositoryFacade interface {
	IndicatorReader
	IndicatorWriter
}
