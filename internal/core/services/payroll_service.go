package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/platform/metrics"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/contapyme/contapyme_backend/internal/utils/rut"
	"github.com/google/uuid"
)

// knownAFPs are the pension fund administrators currently operating in Chile.
var knownAFPs = map[string]bool{
	"CAPITAL":   true,
	"CUPRUM":    true,
	"HABITAT":   true,
	"MODELO":    true,
	"PLANVITAL": true,
	"PROVIDA":   true,
	"UNO":       true,
}

// NormalizeAFPName upper-cases and trims name, dropping an "AFP " prefix.
func NormalizeAFPName(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "AFP ")
	return strings.ReplaceAll(n, " ", "")
}

// payrollService implements the PayrollSvcFacade interface
type payrollService struct {
	BaseService
	employeeRepo    portsrepo.EmployeeRepositoryFacade
	liquidationRepo portsrepo.LiquidationRepositoryFacade
}

// NewPayrollService creates a new payroll service with the provided options
func NewPayrollService(employeeRepo portsrepo.EmployeeRepositoryFacade, liquidationRepo portsrepo.LiquidationRepositoryFacade, options ...ServiceOption) portssvc.PayrollSvcFacade {
	return &payrollService{
		BaseService:     newBaseService(options),
		employeeRepo:    employeeRepo,
		liquidationRepo: liquidationRepo,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, caller domain.SessionUser) (*domain.Employee, error) {
	if err := s.AuthorizeCompany(ctx, caller, req.CompanyID); err != nil {
		return nil, err
	}

	afp := ""
	if req.AFPName != "" {
		afp = NormalizeAFPName(req.AFPName)
		if !knownAFPs[afp] {
			return nil, apperrors.NewValidationError("afp_name no corresponde a una AFP vigente", nil)
		}
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:        uuid.NewString(),
		CompanyID:         req.CompanyID,
		RUT:               rut.Format(req.RUT),
		FullName:          strings.TrimSpace(req.FullName),
		AFPName:           afp,
		HealthInstitution: strings.TrimSpace(req.HealthInstitution),
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "El trabajador ya existe en la empresa", err)
		}
		s.LogError(ctx, err, "Failed to save employee", slog.String("company_id", req.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("company_id", employee.CompanyID))
	return &employee, nil
}

func (s *payrollService) ListEmployees(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.Employee, error) {
	if err := s.AuthorizeCompany(ctx, caller, companyID); err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("company_id", companyID))
		return nil, err
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *payrollService) CreateLiquidation(ctx context.Context, req dto.CreateLiquidationRequest, caller domain.SessionUser) (*domain.PayrollLiquidation, error) {
	if err := s.AuthorizeCompany(ctx, caller, req.CompanyID); err != nil {
		return nil, err
	}

	year, month, ok := utils.ParsePeriod(req.Period)
	if !ok {
		return nil, apperrors.NewValidationError("period debe tener el formato YYYYMM", nil)
	}
	if req.GrossSalary == nil || req.TotalDeductions == nil {
		return nil, apperrors.NewValidationError("gross_salary y total_deductions son requeridos", nil)
	}
	if req.GrossSalary.IsNegative() || req.TotalDeductions.IsNegative() {
		return nil, apperrors.NewValidationError("Los montos no pueden ser negativos", nil)
	}
	net := req.GrossSalary.Sub(*req.TotalDeductions)
	if net.IsNegative() {
		return nil, apperrors.NewValidationError("Los descuentos superan la remuneración bruta", nil)
	}

	afp := ""
	if req.AFPName != "" {
		afp = NormalizeAFPName(req.AFPName)
	}

	now := time.Now()
	liquidation := domain.PayrollLiquidation{
		LiquidationID:     uuid.NewString(),
		CompanyID:         req.CompanyID,
		EmployeeRUT:       rut.Format(req.EmployeeRUT),
		AFPName:           afp,
		HealthInstitution: strings.TrimSpace(req.HealthInstitution),
		PeriodYear:        year,
		PeriodMonth:       int(month),
		GrossSalary:       *req.GrossSalary,
		TotalDeductions:   *req.TotalDeductions,
		NetSalary:         net,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.liquidationRepo.SaveLiquidation(ctx, liquidation); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "Ya existe una liquidación para ese trabajador y período", err)
		}
		s.LogError(ctx, err, "Failed to save liquidation", slog.String("company_id", req.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Liquidation created",
		slog.String("liquidation_id", liquidation.LiquidationID),
		slog.String("period", req.Period))
	return &liquidation, nil
}

func (s *payrollService) ListLiquidations(ctx context.Context, params dto.ListLiquidationsParams, caller domain.SessionUser) ([]domain.PayrollLiquidation, error) {
	if err := s.AuthorizeCompany(ctx, caller, params.CompanyID); err != nil {
		return nil, err
	}

	filter := portsrepo.LiquidationFilter{CompanyID: params.CompanyID}
	if params.Period != "" {
		year, month, ok := utils.ParsePeriod(params.Period)
		if !ok {
			return nil, apperrors.NewValidationError("period debe tener el formato YYYYMM", nil)
		}
		m := int(month)
		filter.PeriodYear = &year
		filter.PeriodMonth = &m
	}
	if params.EmployeeRUT != "" {
		cleaned := rut.Clean(params.EmployeeRUT)
		filter.EmployeeRUT = &cleaned
	}

	liquidations, err := s.liquidationRepo.ListLiquidations(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list liquidations", slog.String("company_id", params.CompanyID))
		return nil, err
	}
	if liquidations == nil {
		return []domain.PayrollLiquidation{}, nil
	}
	return liquidations, nil
}

func (s *payrollService) UpdateAFP(ctx context.Context, items []dto.UpdateAFPItem, caller domain.SessionUser) []domain.AFPUpdateResult {
	results := make([]domain.AFPUpdateResult, 0, len(items))
	owner := caller.UserID
	if caller.Role.CanManageAnyCompany() {
		owner = ""
	}
	for _, item := range items {
		result := s.updateAFPItem(ctx, item, owner)
		metrics.RecordAFPUpdate(result.Status)
		results = append(results, result)
	}

	s.LogInfo(ctx, "AFP batch update finished",
		slog.String("user_id", caller.UserID),
		slog.Int("items", len(items)))
	return results
}

// updateAFPItem restricts the update to companies owned by owner unless owner is empty.
func (s *payrollService) updateAFPItem(ctx context.Context, item dto.UpdateAFPItem, owner string) domain.AFPUpdateResult {
	result := domain.AFPUpdateResult{RUT: item.RUT, AFPName: item.AFPName, Status: domain.AFPUpdateFailed}

	if !rut.IsValid(item.RUT) {
		result.Error = "RUT inválido"
		return result
	}
	afp := NormalizeAFPName(item.AFPName)
	if !knownAFPs[afp] {
		result.Error = "AFP desconocida"
		return result
	}
	result.AFPName = afp

	cleaned := rut.Clean(item.RUT)
	employees, liquidations, err := s.employeeRepo.UpdateAFPByRUT(ctx, cleaned, afp, owner)
	if err != nil {
		s.LogError(ctx, err, "Failed to update AFP", slog.String("rut", cleaned))
		result.Error = "Error al actualizar la AFP"
		return result
	}
	if employees == 0 && liquidations == 0 {
		result.Error = "No se encontraron registros para el RUT"
		return result
	}

	result.Status = domain.AFPUpdateOK
	result.EmployeesUpdated = employees
	result.LiquidationsUpdated = liquidations
	return result
}
