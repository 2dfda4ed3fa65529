package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fixedAssetService implements the FixedAssetSvcFacade interface
type fixedAssetService struct {
	BaseService
	assetRepo portsrepo.FixedAssetRepositoryFacade
}

// NewFixedAssetService creates a new fixed-asset service with the provided options
func NewFixedAssetService(assetRepo portsrepo.FixedAssetRepositoryFacade, options ...ServiceOption) portssvc.FixedAssetSvcFacade {
	return &fixedAssetService{BaseService: newBaseService(options), assetRepo: assetRepo}
}

var _ portssvc.FixedAssetSvcFacade = (*fixedAssetService)(nil)

func (s *fixedAssetService) GetFixedAssetCategories(ctx context.Context) ([]domain.FixedAssetCategory, error) {
	categories, err := s.assetRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed asset categories")
		return nil, err
	}
	if categories == nil {
		return []domain.FixedAssetCategory{}, nil
	}
	return categories, nil
}

func (s *fixedAssetService) ListFixedAssets(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.FixedAsset, error) {
	if err := s.AuthorizeCompany(ctx, caller, companyID); err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.ListAssets(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed assets", slog.String("company_id", companyID))
		return nil, err
	}
	if assets == nil {
		return []domain.FixedAsset{}, nil
	}
	return assets, nil
}

func (s *fixedAssetService) CreateFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest, caller domain.SessionUser) (*domain.FixedAsset, error) {
	if err := s.AuthorizeCompany(ctx, caller, req.CompanyID); err != nil {
		return nil, err
	}

	acquired, err := time.Parse(time.DateOnly, req.AcquisitionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("acquisition_date debe tener el formato YYYY-MM-DD", nil)
	}
	if req.AcquisitionValue == nil || !req.AcquisitionValue.IsPositive() {
		return nil, apperrors.NewValidationError("acquisition_value debe ser mayor que 0", nil)
	}

	category, err := s.assetRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("La categoría de activo fijo no existe", nil)
		}
		s.LogError(ctx, err, "Failed to load fixed asset category", slog.String("category_id", req.CategoryID))
		return nil, err
	}

	usefulLife := category.DefaultUsefulLifeYears
	if req.UsefulLifeYears != nil {
		usefulLife = *req.UsefulLifeYears
	}
	residual := req.AcquisitionValue.Mul(category.DefaultResidualRate).Round(0)
	if req.ResidualValue != nil {
		residual = *req.ResidualValue
	}
	if residual.IsNegative() || residual.GreaterThan(*req.AcquisitionValue) {
		return nil, apperrors.NewValidationError("residual_value debe estar entre 0 y acquisition_value", nil)
	}

	now := time.Now()
	asset := domain.FixedAsset{
		AssetID:          uuid.NewString(),
		CompanyID:        req.CompanyID,
		CategoryID:       category.CategoryID,
		CategoryName:     category.Name,
		Name:             strings.TrimSpace(req.Name),
		AcquisitionDate:  acquired,
		AcquisitionValue: *req.AcquisitionValue,
		ResidualValue:    residual,
		UsefulLifeYears:  usefulLife,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save fixed asset", slog.String("company_id", req.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Fixed asset created",
		slog.String("asset_id", asset.AssetID),
		slog.String("company_id", asset.CompanyID))
	return &asset, nil
}

func (s *fixedAssetService) GetFixedAssetsReport(ctx context.Context, companyID string, reportType domain.FixedAssetReportType, year int, caller domain.SessionUser) (*domain.FixedAssetReport, error) {
	if reportType != domain.ReportSummary && reportType != domain.ReportDepreciation {
		return nil, apperrors.NewValidationError("type debe ser summary o depreciation", nil)
	}
	if err := s.AuthorizeCompany(ctx, caller, companyID); err != nil {
		return nil, err
	}
	if year == 0 {
		year = time.Now().Year()
	}

	assets, err := s.assetRepo.ListAssets(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load fixed assets for report", slog.String("company_id", companyID))
		return nil, err
	}

	report, err := BuildFixedAssetReport(assets, reportType, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute fixed asset report", slog.String("company_id", companyID))
		return nil, err
	}

	s.LogDebug(ctx, "Fixed asset report generated",
		slog.String("company_id", companyID),
		slog.String("type", string(reportType)),
		slog.Int("year", year),
		slog.Int("assets", len(assets)))
	return report, nil
}

// BuildFixedAssetReport aggregates assets in memory. Assets acquired after year
// and inactive assets are left out.
func BuildFixedAssetReport(assets []domain.FixedAsset, reportType domain.FixedAssetReportType, year int) (*domain.FixedAssetReport, error) {
	report := &domain.FixedAssetReport{
		Type:                  reportType,
		Year:                  year,
		TotalAcquisitionValue: decimal.Zero,
		TotalYearDepreciation: decimal.Zero,
		TotalAccumulated:      decimal.Zero,
		TotalBookValue:        decimal.Zero,
	}

	byCategory := map[string]*domain.FixedAssetCategorySummary{}
	rows := []domain.FixedAssetDepreciationRow{}

	for _, a := range assets {
		if !a.IsActive || a.AcquisitionDate.Year() > year {
			continue
		}
		dep, err := accounting.StraightLineDepreciation(a.AcquisitionValue, a.ResidualValue, a.UsefulLifeYears, a.AcquisitionDate, year)
		if err != nil {
			return nil, err
		}

		report.TotalAcquisitionValue = report.TotalAcquisitionValue.Add(a.AcquisitionValue)
		report.TotalYearDepreciation = report.TotalYearDepreciation.Add(dep.YearAmount)
		report.TotalAccumulated = report.TotalAccumulated.Add(dep.AccumulatedAtEnd)
		report.TotalBookValue = report.TotalBookValue.Add(dep.BookValueAtEnd)

		switch reportType {
		case domain.ReportSummary:
			summary, ok := byCategory[a.CategoryID]
			if !ok {
				summary = &domain.FixedAssetCategorySummary{
					CategoryID:              a.CategoryID,
					CategoryName:            a.CategoryName,
					AcquisitionValue:        decimal.Zero,
					AccumulatedDepreciation: decimal.Zero,
					BookValue:               decimal.Zero,
				}
				byCategory[a.CategoryID] = summary
			}
			summary.AssetCount++
			summary.AcquisitionValue = summary.AcquisitionValue.Add(a.AcquisitionValue)
			summary.AccumulatedDepreciation = summary.AccumulatedDepreciation.Add(dep.AccumulatedAtEnd)
			summary.BookValue = summary.BookValue.Add(dep.BookValueAtEnd)
		case domain.ReportDepreciation:
			rows = append(rows, domain.FixedAssetDepreciationRow{
				AssetID:                 a.AssetID,
				Name:                    a.Name,
				CategoryName:            a.CategoryName,
				AcquisitionValue:        a.AcquisitionValue,
				AnnualDepreciation:      dep.Annual,
				MonthsDepreciated:       dep.MonthsInYear,
				YearDepreciation:        dep.YearAmount,
				AccumulatedDepreciation: dep.AccumulatedAtEnd,
				BookValue:               dep.BookValueAtEnd,
			})
		}
	}

	switch reportType {
	case domain.ReportSummary:
		report.Categories = make([]domain.FixedAssetCategorySummary, 0, len(byCategory))
		for _, summary := range byCategory {
			report.Categories = append(report.Categories, *summary)
		}
		sort.Slice(report.Categories, func(i, j int) bool {
			return report.Categories[i].CategoryName < report.Categories[j].CategoryName
		})
	case domain.ReportDepreciation:
		report.Assets = rows
	}
	return report, nil
}
