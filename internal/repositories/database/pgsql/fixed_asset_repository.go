package pgsql

import (
	"context"
	"fmt"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFixedAssetRepository implements portsrepo.FixedAssetRepositoryFacade over pgx.
type PgxFixedAssetRepository struct {
	BaseRepository
}

func newPgxFixedAssetRepository(pool *pgxpool.Pool) portsrepo.FixedAssetRepositoryFacade {
	return &PgxFixedAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FixedAssetRepositoryFacade = (*PgxFixedAssetRepository)(nil)

const categorySelect = `SELECT id, name, description, default_useful_life_years, default_residual_rate FROM fixed_asset_categories`

func scanCategory(row pgx.Row) (*domain.FixedAssetCategory, error) {
	var c domain.FixedAssetCategory
	var description *string
	if err := row.Scan(&c.CategoryID, &c.Name, &description, &c.DefaultUsefulLifeYears, &c.DefaultResidualRate); err != nil {
		return nil, err
	}
	c.Description = deref(description)
	return &c, nil
}

func (r *PgxFixedAssetRepository) ListCategories(ctx context.Context) ([]domain.FixedAssetCategory, error) {
	rows, err := r.Pool.Query(ctx, categorySelect+` ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed asset categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.FixedAssetCategory{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset category row: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed asset category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxFixedAssetRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.FixedAssetCategory, error) {
	category, err := scanCategory(r.Pool.QueryRow(ctx, categorySelect+` WHERE id = $1;`, categoryID))
	if err != nil {
		return nil, translateReadError(err, "fixed asset category "+categoryID)
	}
	return category, nil
}

func (r *PgxFixedAssetRepository) ListAssets(ctx context.Context, companyID string) ([]domain.FixedAsset, error) {
	query := `
		SELECT f.id, f.company_id, f.category_id, c.name, f.name, f.acquisition_date, f.acquisition_value,
			f.residual_value, f.useful_life_years, f.is_active, f.created_at, f.created_by, f.updated_at, f.updated_by
		FROM fixed_assets f
		JOIN fixed_asset_categories c ON c.id = f.category_id
		WHERE f.company_id = $1
		ORDER BY f.acquisition_date, f.name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed assets for company %s: %w", companyID, err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		var a domain.FixedAsset
		var createdBy, updatedBy *string
		err := rows.Scan(&a.AssetID, &a.CompanyID, &a.CategoryID, &a.CategoryName, &a.Name, &a.AcquisitionDate,
			&a.AcquisitionValue, &a.ResidualValue, &a.UsefulLifeYears, &a.IsActive,
			&a.CreatedAt, &createdBy, &a.LastUpdatedAt, &updatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset row: %w", err)
		}
		a.CreatedBy = deref(createdBy)
		a.LastUpdatedBy = deref(updatedBy)
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed asset rows: %w", err)
	}
	return assets, nil
}

func (r *PgxFixedAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	query := `
		INSERT INTO fixed_assets (id, company_id, category_id, name, acquisition_date, acquisition_value,
			residual_value, useful_life_years, is_active, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		asset.AssetID,
		asset.CompanyID,
		asset.CategoryID,
		asset.Name,
		asset.AcquisitionDate,
		asset.AcquisitionValue,
		asset.ResidualValue,
		asset.UsefulLifeYears,
		asset.IsActive,
		asset.CreatedAt,
		nullIfEmpty(asset.CreatedBy),
		asset.LastUpdatedAt,
		nullIfEmpty(asset.LastUpdatedBy),
	)
	if err != nil {
		return translateWriteError(err, "save fixed asset "+asset.Name)
	}
	return nil
}
