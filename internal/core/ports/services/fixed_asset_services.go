package services

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
)

// FixedAssetReaderSvc defines read operations for fixed assets
type FixedAssetReaderSvc interface {
	// GetFixedAssetCategories lists categories with their default depreciation parameters.
	GetFixedAssetCategories(ctx context.Context) ([]domain.FixedAssetCategory, error)

	// ListFixedAssets lists a company's assets.
	ListFixedAssets(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.FixedAsset, error)

	// GetFixedAssetsReport fetches the company's assets once and aggregates them for year.
	GetFixedAssetsReport(ctx context.Context, companyID string, reportType domain.FixedAssetReportType, year int, caller domain.SessionUser) (*domain.FixedAssetReport, error)
}

// FixedAssetWriterSvc defines write operations for fixed assets
type FixedAssetWriterSvc interface {
	CreateFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest, caller domain.SessionUser) (*domain.FixedAsset, error)
}

// FixedAssetSvcFacade combines all fixed-asset service interfaces
type FixedAssetSvcFacade interface {
	FixedAssetReaderSvc
	FixedAssetWriterSvc
}
