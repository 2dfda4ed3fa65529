package services

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
)

// PayrollReaderSvc defines read operations for employees and liquidations
type PayrollReaderSvc interface {
	ListEmployees(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.Employee, error)
	ListLiquidations(ctx context.Context, params dto.ListLiquidationsParams, caller domain.SessionUser) ([]domain.PayrollLiquidation, error)
}

// PayrollWriterSvc defines write operations for employees and liquidations
type PayrollWriterSvc interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, caller domain.SessionUser) (*domain.Employee, error)
	CreateLiquidation(ctx context.Context, req dto.CreateLiquidationRequest, caller domain.SessionUser) (*domain.PayrollLiquidation, error)

	// UpdateAFP applies each item in its own transaction and reports every item's outcome.
	// A failing item never aborts the batch.
	UpdateAFP(ctx context.Context, items []dto.UpdateAFPItem, caller domain.SessionUser) []domain.AFPUpdateResult
}

// PayrollSvcFacade combines all payroll service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}

// SIILookupSvc resolves pension and health affiliations by RUT.
type SIILookupSvc interface {
	// LookupAFP returns ErrValidation for malformed RUTs and ErrNotFound for unknown ones.
	LookupAFP(ctx context.Context, rut string) (*domain.SIIAffiliation, error)
}
