package domain

import "github.com/shopspring/decimal"

// Employee is a worker of a company with pension (AFP) and health affiliations.
type Employee struct {
	EmployeeID        string `json:"id"`
	CompanyID         string `json:"company_id"`
	RUT               string `json:"rut"`
	FullName          string `json:"full_name"`
	AFPName           string `json:"afp_name,omitempty"`
	HealthInstitution string `json:"health_institution,omitempty"`
	IsActive          bool   `json:"is_active"`
	AuditFields
}

// PayrollLiquidation is an employee's salary settlement for one month.
type PayrollLiquidation struct {
	LiquidationID     string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	EmployeeRUT       string          `json:"employee_rut"`
	AFPName           string          `json:"afp_name,omitempty"`
	HealthInstitution string          `json:"health_institution,omitempty"`
	PeriodYear        int             `json:"period_year"`
	PeriodMonth       int             `json:"period_month"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	AuditFields
}

// AFPUpdate is one requested change of an employee's AFP.
type AFPUpdate struct {
	RUT     string `json:"rut"`
	AFPName string `json:"afp_name"`
}

// AFPUpdateStatus values reported per item of a batch update.
const (
	AFPUpdateOK     = "updated"
	AFPUpdateFailed = "failed"
)

// AFPUpdateResult is the outcome of one item of a batch AFP update.
type AFPUpdateResult struct {
	RUT                 string `json:"rut"`
	AFPName             string `json:"afp_name"`
	Status              string `json:"status"`
	EmployeesUpdated    int64  `json:"employees_updated"`
	LiquidationsUpdated int64  `json:"liquidations_updated"`
	Error               string `json:"error,omitempty"`
}

// SIIAffiliation is the pension/health affiliation returned by the SII lookup.
type SIIAffiliation struct {
	RUT               string `json:"rut"`
	Name              string `json:"name,omitempty"`
	AFPName           string `json:"afp_name"`
	HealthInstitution string `json:"health_institution"`
	Source            string `json:"source"`
}
