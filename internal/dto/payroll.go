package dto

import (
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register an employee.
type CreateEmployeeRequest struct {
	CompanyID         string `json:"company_id" binding:"required,uuid"`
	RUT               string `json:"rut" binding:"required,rut"`
	FullName          string `json:"full_name" binding:"required,max=255"`
	AFPName           string `json:"afp_name" binding:"omitempty,max=50"`
	HealthInstitution string `json:"health_institution" binding:"omitempty,max=100"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	CompanyID string `form:"company_id" binding:"required,uuid"`
}

// CreateLiquidationRequest defines the data needed to record a payroll liquidation.
type CreateLiquidationRequest struct {
	CompanyID         string           `json:"company_id" binding:"required,uuid"`
	EmployeeRUT       string           `json:"employee_rut" binding:"required,rut"`
	Period            string           `json:"period" binding:"required,period"` // YYYYMM
	GrossSalary       *decimal.Decimal `json:"gross_salary" binding:"required"`
	TotalDeductions   *decimal.Decimal `json:"total_deductions" binding:"required"`
	AFPName           string           `json:"afp_name" binding:"omitempty,max=50"`
	HealthInstitution string           `json:"health_institution" binding:"omitempty,max=100"`
}

// ListLiquidationsParams defines query parameters for listing liquidations.
type ListLiquidationsParams struct {
	CompanyID   string `form:"company_id" binding:"required,uuid"`
	Period      string `form:"period" binding:"omitempty,period"`
	EmployeeRUT string `form:"employee_rut" binding:"omitempty,rut"`
}

// UpdateAFPItem is one element of the update-afp batch. Items are validated
// individually so that one bad item does not reject the batch.
type UpdateAFPItem struct {
	RUT     string `json:"rut"`
	AFPName string `json:"afp_name"`
}

// UpdateAFPSummary aggregates the per-item results of a batch.
type UpdateAFPSummary struct {
	Total   int                      `json:"total"`
	Updated int                      `json:"updated"`
	Failed  int                      `json:"failed"`
	Results []domain.AFPUpdateResult `json:"results"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID        string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	RUT               string    `json:"rut"`
	FullName          string    `json:"full_name"`
	AFPName           string    `json:"afp_name,omitempty"`
	HealthInstitution string    `json:"health_institution,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// LiquidationResponse defines the data returned for a liquidation.
type LiquidationResponse struct {
	LiquidationID     string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	EmployeeRUT       string          `json:"employee_rut"`
	AFPName           string          `json:"afp_name,omitempty"`
	HealthInstitution string          `json:"health_institution,omitempty"`
	PeriodYear        int             `json:"period_year"`
	PeriodMonth       int             `json:"period_month"`
	PeriodLabel       string          `json:"period_label"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	NetSalaryDisplay  string          `json:"net_salary_display"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:        e.EmployeeID,
		CompanyID:         e.CompanyID,
		RUT:               e.RUT,
		FullName:          e.FullName,
		AFPName:           e.AFPName,
		HealthInstitution: e.HealthInstitution,
		IsActive:          e.IsActive,
		CreatedAt:         e.CreatedAt,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}

// ToLiquidationResponse converts a domain.PayrollLiquidation to LiquidationResponse DTO
func ToLiquidationResponse(l *domain.PayrollLiquidation) LiquidationResponse {
	return LiquidationResponse{
		LiquidationID:     l.LiquidationID,
		CompanyID:         l.CompanyID,
		EmployeeRUT:       l.EmployeeRUT,
		AFPName:           l.AFPName,
		HealthInstitution: l.HealthInstitution,
		PeriodYear:        l.PeriodYear,
		PeriodMonth:       l.PeriodMonth,
		PeriodLabel:       utils.FormatPeriod(utils.PeriodKey(l.PeriodYear, l.PeriodMonth)),
		GrossSalary:       l.GrossSalary,
		TotalDeductions:   l.TotalDeductions,
		NetSalary:         l.NetSalary,
		NetSalaryDisplay:  utils.FormatCurrency(l.NetSalary),
	}
}

// ToListLiquidationResponse converts a slice of domain.PayrollLiquidation
func ToListLiquidationResponse(liquidations []domain.PayrollLiquidation) []LiquidationResponse {
	res := make([]LiquidationResponse, len(liquidations))
	for i := range liquidations {
		res[i] = ToLiquidationResponse(&liquidations[i])
	}
	return res
}

// ToUpdateAFPSummary counts the outcomes of a batch.
func ToUpdateAFPSummary(results []domain.AFPUpdateResult) UpdateAFPSummary {
	summary := UpdateAFPSummary{Total: len(results), Results: results}
	if summary.Results == nil {
		summary.Results = []domain.AFPUpdateResult{}
	}
	for _, r := range results {
		if r.Status == domain.AFPUpdateOK {
			summary.Updated++
		} else {
			summary.Failed++
		}
	}
	return summary
}
