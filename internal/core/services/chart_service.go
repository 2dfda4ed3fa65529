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
	"github.com/google/uuid"
)

type chartTemplateAccount struct {
	Code string
	Name string
	Type domain.AccountType
}

// basicChart is the default chart for a Chilean SME. Parents precede children;
// summary accounts have codes with fewer than three segments.
var basicChart = []chartTemplateAccount{
	{"1", "ACTIVO", domain.Asset},
	{"1.1", "Activo Circulante", domain.Asset},
	{"1.1.01", "Caja", domain.Asset},
	{"1.1.02", "Banco", domain.Asset},
	{"1.1.03", "Clientes", domain.Asset},
	{"1.1.04", "IVA Crédito Fiscal", domain.Asset},
	{"1.1.05", "Pagos Provisionales Mensuales", domain.Asset},
	{"1.2", "Activo Fijo", domain.Asset},
	{"1.2.01", "Maquinarias y Equipos", domain.Asset},
	{"1.2.02", "Depreciación Acumulada", domain.Asset},
	{"1.2.03", "Vehículos", domain.Asset},
	{"1.2.04", "Muebles y Útiles", domain.Asset},
	{"2", "PASIVO", domain.Liability},
	{"2.1", "Pasivo Circulante", domain.Liability},
	{"2.1.01", "Proveedores", domain.Liability},
	{"2.1.02", "IVA Débito Fiscal", domain.Liability},
	{"2.1.03", "Retenciones por Pagar", domain.Liability},
	{"2.1.04", "Impuesto Único por Pagar", domain.Liability},
	{"2.1.05", "Remuneraciones por Pagar", domain.Liability},
	{"2.1.06", "Cotizaciones AFP por Pagar", domain.Liability},
	{"2.1.07", "Cotizaciones de Salud por Pagar", domain.Liability},
	{"3", "PATRIMONIO", domain.Equity},
	{"3.1", "Capital", domain.Equity},
	{"3.1.01", "Capital Pagado", domain.Equity},
	{"3.1.02", "Resultados Acumulados", domain.Equity},
	{"3.1.03", "Resultado del Ejercicio", domain.Equity},
	{"4", "INGRESOS", domain.Income},
	{"4.1", "Ingresos Operacionales", domain.Income},
	{"4.1.01", "Ventas", domain.Income},
	{"4.1.02", "Prestación de Servicios", domain.Income},
	{"4.2", "Otros Ingresos", domain.Income},
	{"4.2.01", "Ingresos Financieros", domain.Income},
	{"5", "GASTOS", domain.Expense},
	{"5.1", "Gastos Operacionales", domain.Expense},
	{"5.1.01", "Remuneraciones", domain.Expense},
	{"5.1.02", "Leyes Sociales", domain.Expense},
	{"5.1.03", "Arriendos", domain.Expense},
	{"5.1.04", "Depreciación del Ejercicio", domain.Expense},
	{"5.1.05", "Servicios Básicos", domain.Expense},
	{"5.2", "Costos", domain.Expense},
	{"5.2.01", "Costo de Ventas", domain.Expense},
}

// chartService implements the ChartSvcFacade interface
type chartService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewChartService creates a new chart-of-accounts service with the provided options
func NewChartService(accountRepo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.ChartSvcFacade {
	return &chartService{BaseService: newBaseService(options), accountRepo: accountRepo}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// parentCode returns the code of the parent of code, or "" for roots.
func parentCode(code string) string {
	idx := strings.LastIndex(code, ".")
	if idx < 0 {
		return ""
	}
	return code[:idx]
}

func codeLevel(code string) int {
	return strings.Count(code, ".") + 1
}

// BasicChartAccounts builds the default chart for companyID.
func BasicChartAccounts(companyID, userID string, now time.Time) []domain.Account {
	accounts := make([]domain.Account, len(basicChart))
	for i, t := range basicChart {
		level := codeLevel(t.Code)
		accounts[i] = domain.Account{
			AccountID:   uuid.NewString(),
			CompanyID:   companyID,
			Code:        t.Code,
			Name:        t.Name,
			AccountType: t.Type,
			ParentCode:  parentCode(t.Code),
			Level:       level,
			IsActive:    true,
			IsDetail:    level >= 3,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return accounts
}

func (s *chartService) CreateBasicChartOfAccounts(ctx context.Context, companyID string, caller domain.SessionUser) (int64, []domain.Account, error) {
	if err := s.AuthorizeCompany(ctx, caller, companyID); err != nil {
		return 0, nil, err
	}

	accounts := BasicChartAccounts(companyID, caller.UserID, time.Now())
	created, err := s.accountRepo.SaveAccounts(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to create basic chart of accounts", slog.String("company_id", companyID))
		return 0, nil, err
	}

	chart, err := s.accountRepo.ListAccounts(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload chart of accounts", slog.String("company_id", companyID))
		return created, nil, err
	}

	s.LogInfo(ctx, "Basic chart of accounts initialized",
		slog.String("company_id", companyID),
		slog.Int64("created", created),
		slog.Int("total", len(chart)))
	return created, chart, nil
}

func (s *chartService) ListAccounts(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.Account, error) {
	if err := s.AuthorizeCompany(ctx, caller, companyID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *chartService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, caller domain.SessionUser) (*domain.Account, error) {
	if err := s.AuthorizeCompany(ctx, caller, req.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   req.CompanyID,
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		AccountType: req.AccountType,
		Level:       1,
		IsActive:    true,
		IsDetail:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}
	if req.IsDetail != nil {
		account.IsDetail = *req.IsDetail
	}

	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("La cuenta padre no existe", nil)
			}
			s.LogError(ctx, err, "Failed to load parent account", slog.String("parent_id", *req.ParentAccountID))
			return nil, err
		}
		if parent.CompanyID != req.CompanyID {
			return nil, apperrors.NewValidationError("La cuenta padre pertenece a otra empresa", nil)
		}
		if parent.AccountType != req.AccountType {
			return nil, apperrors.NewValidationError("El tipo de cuenta debe coincidir con el de la cuenta padre", nil)
		}
		account.ParentAccountID = parent.AccountID
		account.ParentCode = parent.Code
		account.Level = parent.Level + 1
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "Ya existe una cuenta con ese código", err)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("code", account.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("company_id", account.CompanyID))
	return &account, nil
}
