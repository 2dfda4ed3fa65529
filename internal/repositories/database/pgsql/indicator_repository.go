package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIndicatorRepository implements portsrepo.IndicatorRepositoryFacade over pgx.
type PgxIndicatorRepository struct {
	BaseRepository
}

func newPgxIndicatorRepository(pool *pgxpool.Pool) portsrepo.IndicatorRepositoryFacade {
	return &PgxIndicatorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IndicatorRepositoryFacade = (*PgxIndicatorRepository)(nil)

const upsertIndicatorQuery = `
	INSERT INTO economic_indicators (code, indicator_date, value, name, unit, source, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (code, indicator_date) DO UPDATE SET
		value = EXCLUDED.value,
		name = COALESCE(EXCLUDED.name, economic_indicators.name),
		unit = COALESCE(EXCLUDED.unit, economic_indicators.unit),
		source = EXCLUDED.source,
		updated_at = EXCLUDED.updated_at;`

func indicatorArgs(i domain.EconomicIndicator) []any {
	return []any{i.Code, i.Date, i.Value, nullIfEmpty(i.Name), nullIfEmpty(i.Unit), nullIfEmpty(i.Source), i.UpdatedAt}
}

func scanIndicators(rows pgx.Rows) ([]domain.EconomicIndicator, error) {
	defer rows.Close()
	indicators := []domain.EconomicIndicator{}
	for rows.Next() {
		var i domain.EconomicIndicator
		var name, unit, source *string
		if err := rows.Scan(&i.Code, &i.Date, &i.Value, &name, &unit, &source, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan indicator row: %w", err)
		}
		i.Name = deref(name)
		i.Unit = deref(unit)
		i.Source = deref(source)
		indicators = append(indicators, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating indicator rows: %w", err)
	}
	return indicators, nil
}

func (r *PgxIndicatorRepository) UpsertIndicator(ctx context.Context, indicator domain.EconomicIndicator) error {
	if _, err := r.Pool.Exec(ctx, upsertIndicatorQuery, indicatorArgs(indicator)...); err != nil {
		return translateWriteError(err, "upsert indicator "+indicator.Code)
	}
	return nil
}

func (r *PgxIndicatorRepository) UpsertIndicators(ctx context.Context, indicators []domain.EconomicIndicator) error {
	if len(indicators) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, i := range indicators {
		batch.Queue(upsertIndicatorQuery, indicatorArgs(i)...)
	}
	br := r.Pool.SendBatch(ctx, batch)
	for _, i := range indicators {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateWriteError(err, "upsert indicator "+i.Code)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close indicator batch: %w", err)
	}
	return nil
}

func (r *PgxIndicatorRepository) ListLatestIndicators(ctx context.Context) ([]domain.EconomicIndicator, error) {
	query := `
		SELECT DISTINCT ON (code) code, indicator_date, value, name, unit, source, updated_at
		FROM economic_indicators
		ORDER BY code, indicator_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest indicators: %w", err)
	}
	return scanIndicators(rows)
}

func (r *PgxIndicatorRepository) ListIndicatorHistory(ctx context.Context, code string, limit int, before *time.Time) ([]domain.EconomicIndicator, error) {
	query := `
		SELECT code, indicator_date, value, name, unit, source, updated_at
		FROM economic_indicators
		WHERE code = $1 AND ($2::date IS NULL OR indicator_date < $2::date)
		ORDER BY indicator_date DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, code, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for indicator %s: %w", code, err)
	}
	return scanIndicators(rows)
}
