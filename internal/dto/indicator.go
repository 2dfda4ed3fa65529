package dto

import (
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// UpdateIndicatorRequest upserts the value of an indicator for a date.
type UpdateIndicatorRequest struct {
	Code  string   `json:"code" binding:"required,max=30"`
	Value *float64 `json:"value" binding:"required,gte=0"`
	Date  string   `json:"date" binding:"omitempty,datetime=2006-01-02"` // Defaults to today
}

// ListIndicatorsParams selects the dashboard (no code) or one indicator's history.
type ListIndicatorsParams struct {
	Code      string  `form:"code" binding:"omitempty,max=30"`
	Limit     int     `form:"limit,default=30" binding:"omitempty,min=1,max=365"`
	NextToken *string `form:"next_token"`
}

// IndicatorResponse defines the data returned for one indicator value.
type IndicatorResponse struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Display   string          `json:"display"`
	Unit      string          `json:"unit,omitempty"`
	Date      string          `json:"date"`
	Source    string          `json:"source,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IndicatorDashboardResponse is the latest value of every known indicator.
type IndicatorDashboardResponse struct {
	Indicators []IndicatorResponse `json:"indicators"`
	UpdatedAt  *time.Time          `json:"updated_at,omitempty"`
}

// IndicatorHistoryResponse is a page of one indicator's values, newest first.
type IndicatorHistoryResponse struct {
	Code      string              `json:"code"`
	Values    []IndicatorResponse `json:"values"`
	NextToken *string             `json:"next_token,omitempty"`
}

// ToIndicatorResponse converts a domain.EconomicIndicator with an es-CL display string.
func ToIndicatorResponse(i *domain.EconomicIndicator) IndicatorResponse {
	var display string
	switch i.Unit {
	case "CLP":
		display = "$" + utils.FormatNumber(i.Value, 2)
	case "%":
		display = utils.FormatNumber(i.Value, 2) + "%"
	case "USD":
		display = utils.FormatCurrencyCode(i.Value, "USD")
	default:
		display = utils.FormatNumber(i.Value, 2)
	}
	return IndicatorResponse{
		Code:      i.Code,
		Name:      i.Name,
		Value:     i.Value,
		Display:   display,
		Unit:      i.Unit,
		Date:      i.Date.Format(time.DateOnly),
		Source:    i.Source,
		UpdatedAt: i.UpdatedAt,
	}
}

// ToIndicatorDashboardResponse converts the latest values and reports the newest update time.
func ToIndicatorDashboardResponse(indicators []domain.EconomicIndicator) IndicatorDashboardResponse {
	res := IndicatorDashboardResponse{Indicators: make([]IndicatorResponse, len(indicators))}
	for i := range indicators {
		res.Indicators[i] = ToIndicatorResponse(&indicators[i])
		if res.UpdatedAt == nil || indicators[i].UpdatedAt.After(*res.UpdatedAt) {
			updated := indicators[i].UpdatedAt
			res.UpdatedAt = &updated
		}
	}
	return res
}

// ToIndicatorHistoryResponse converts a page of history.
func ToIndicatorHistoryResponse(code string, values []domain.EconomicIndicator, nextToken *string) IndicatorHistoryResponse {
	res := IndicatorHistoryResponse{Code: code, Values: make([]IndicatorResponse, len(values)), NextToken: nextToken}
	for i := range values {
		res.Values[i] = ToIndicatorResponse(&values[i])
	}
	return res
}
