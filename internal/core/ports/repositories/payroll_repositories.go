package repositories

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employees
type EmployeeReader interface {
	// ListEmployees retrieves a company's employees ordered by name.
	ListEmployees(ctx context.Context, companyID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employees
type EmployeeWriter interface {
	// SaveEmployee persists a new employee. Returns ErrDuplicate if the RUT exists in the company.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateAFPByRUT sets the AFP of every employee and payroll liquidation matching rut inside
	// one database transaction, returning the affected row counts of each table. When ownerUserID is
	// not empty only rows of companies owned by that user are touched.
	UpdateAFPByRUT(ctx context.Context, rut string, afpName string, ownerUserID string) (employees int64, liquidations int64, err error)
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// LiquidationFilter narrows ListLiquidations. Nil fields are ignored.
type LiquidationFilter struct {
	CompanyID   string
	PeriodYear  *int
	PeriodMonth *int
	EmployeeRUT *string
}

// LiquidationReader defines read operations for payroll liquidations
type LiquidationReader interface {
	ListLiquidations(ctx context.Context, filter LiquidationFilter) ([]domain.PayrollLiquidation, error)
}

// LiquidationWriter defines write operations for payroll liquidations
type LiquidationWriter interface {
	// SaveLiquidation persists a new liquidation. Returns ErrDuplicate for a repeated period.
	SaveLiquidation(ctx context.Context, liquidation domain.PayrollLiquidation) error
}

// LiquidationRepositoryFacade combines all liquidation repository interfaces
type LiquidationRepositoryFacade interface {
	LiquidationReader
	LiquidationWriter
}
