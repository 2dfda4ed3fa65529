package dto

import (
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateFixedAssetRequest defines the data needed to register a fixed asset.
// Residual value and useful life default to the category parameters when omitted.
type CreateFixedAssetRequest struct {
	CompanyID        string           `json:"company_id" binding:"required,uuid"`
	CategoryID       string           `json:"category_id" binding:"required,uuid"`
	Name             string           `json:"name" binding:"required,max=255"`
	AcquisitionDate  string           `json:"acquisition_date" binding:"required,datetime=2006-01-02"`
	AcquisitionValue *decimal.Decimal `json:"acquisition_value" binding:"required"`
	ResidualValue    *decimal.Decimal `json:"residual_value"`
	UsefulLifeYears  *int             `json:"useful_life_years" binding:"omitempty,min=1,max=100"`
}

// ListFixedAssetsParams defines query parameters for listing assets.
type ListFixedAssetsParams struct {
	CompanyID string `form:"company_id" binding:"required,uuid"`
}

// FixedAssetReportParams defines query parameters for the fixed-asset report.
type FixedAssetReportParams struct {
	CompanyID string `form:"company_id" binding:"required,uuid"`
	Type      string `form:"type" binding:"required,oneof=summary depreciation"`
	Year      int    `form:"year" binding:"omitempty,min=1900,max=2100"` // Defaults to the current year
}

// FixedAssetResponse defines the data returned for an asset.
type FixedAssetResponse struct {
	AssetID          string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name,omitempty"`
	Name             string          `json:"name"`
	AcquisitionDate  string          `json:"acquisition_date"`
	AcquisitionShown string          `json:"acquisition_date_display"`
	AcquisitionValue decimal.Decimal `json:"acquisition_value"`
	ResidualValue    decimal.Decimal `json:"residual_value"`
	UsefulLifeYears  int             `json:"useful_life_years"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ToFixedAssetResponse converts a domain.FixedAsset to FixedAssetResponse DTO
func ToFixedAssetResponse(a *domain.FixedAsset) FixedAssetResponse {
	return FixedAssetResponse{
		AssetID:          a.AssetID,
		CompanyID:        a.CompanyID,
		CategoryID:       a.CategoryID,
		CategoryName:     a.CategoryName,
		Name:             a.Name,
		AcquisitionDate:  a.AcquisitionDate.Format(time.DateOnly),
		AcquisitionShown: utils.FormatDate(a.AcquisitionDate),
		AcquisitionValue: a.AcquisitionValue,
		ResidualValue:    a.ResidualValue,
		UsefulLifeYears:  a.UsefulLifeYears,
		IsActive:         a.IsActive,
		CreatedAt:        a.CreatedAt,
	}
}

// ToListFixedAssetResponse converts a slice of domain.FixedAsset
func ToListFixedAssetResponse(assets []domain.FixedAsset) []FixedAssetResponse {
	res := make([]FixedAssetResponse, len(assets))
	for i := range assets {
		res[i] = ToFixedAssetResponse(&assets[i])
	}
	return res
}
