package repositories

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
)

// FixedAssetReader defines read operations for fixed assets and their categories
type FixedAssetReader interface {
	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.FixedAssetCategory, error)

	// FindCategoryByID retrieves a category by its ID.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.FixedAssetCategory, error)

	// ListAssets retrieves all assets of a company, including the category name.
	ListAssets(ctx context.Context, companyID string) ([]domain.FixedAsset, error)
}

// FixedAssetWriter defines write operations for fixed assets
type FixedAssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.FixedAsset) error
}

// FixedAssetRepositoryFacade combines all fixed-asset repository interfaces
type FixedAssetRepositoryFacade interface {
	FixedAssetReader
	FixedAssetWriter
}
