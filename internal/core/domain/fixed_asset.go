package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAssetCategory groups assets sharing default depreciation parameters.
type FixedAssetCategory struct {
	CategoryID             string          `json:"id"`
	Name                   string          `json:"name"`
	Description            string          `json:"description,omitempty"`
	DefaultUsefulLifeYears int             `json:"default_useful_life_years"`
	DefaultResidualRate    decimal.Decimal `json:"default_residual_rate"` // Fraction of acquisition value, 0..1
}

// FixedAsset is a depreciable asset owned by a company.
type FixedAsset struct {
	AssetID          string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name,omitempty"`
	Name             string          `json:"name"`
	AcquisitionDate  time.Time       `json:"acquisition_date"`
	AcquisitionValue decimal.Decimal `json:"acquisition_value"`
	ResidualValue    decimal.Decimal `json:"residual_value"`
	UsefulLifeYears  int             `json:"useful_life_years"`
	IsActive         bool            `json:"is_active"`
	AuditFields
}

// FixedAssetReportType selects the aggregation performed by the report accessor.
type FixedAssetReportType string

const (
	ReportSummary      FixedAssetReportType = "summary"
	ReportDepreciation FixedAssetReportType = "depreciation"
)

// FixedAssetCategorySummary aggregates all assets of one category.
type FixedAssetCategorySummary struct {
	CategoryID              string          `json:"category_id"`
	CategoryName            string          `json:"category_name"`
	AssetCount              int             `json:"asset_count"`
	AcquisitionValue        decimal.Decimal `json:"acquisition_value"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	BookValue               decimal.Decimal `json:"book_value"`
}

// FixedAssetDepreciationRow is one asset's depreciation for the report year.
type FixedAssetDepreciationRow struct {
	AssetID                 string          `json:"asset_id"`
	Name                    string          `json:"name"`
	CategoryName            string          `json:"category_name"`
	AcquisitionValue        decimal.Decimal `json:"acquisition_value"`
	AnnualDepreciation      decimal.Decimal `json:"annual_depreciation"`
	MonthsDepreciated       int             `json:"months_depreciated"`
	YearDepreciation        decimal.Decimal `json:"year_depreciation"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	BookValue               decimal.Decimal `json:"book_value"`
}

// FixedAssetReport is the result of the report accessor. Only the section matching Type is populated.
type FixedAssetReport struct {
	Type                  FixedAssetReportType        `json:"type"`
	Year                  int                         `json:"year"`
	Categories            []FixedAssetCategorySummary `json:"categories,omitempty"`
	Assets                []FixedAssetDepreciationRow `json:"assets,omitempty"`
	TotalAcquisitionValue decimal.Decimal             `json:"total_acquisition_value"`
	TotalYearDepreciation decimal.Decimal             `json:"total_year_depreciation"`
	TotalAccumulated      decimal.Decimal             `json:"total_accumulated_depreciation"`
	TotalBookValue        decimal.Decimal             `json:"total_book_value"`
}
