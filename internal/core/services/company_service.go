package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/utils/rut"
	"github.com/google/uuid"
)

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service. It is also the CompanyAuthorizerSvc
// handed to every company-scoped service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateUserCompany(ctx context.Context, req dto.CreateCompanyRequest, caller domain.SessionUser) (*domain.Company, error) {
	businessName := strings.TrimSpace(req.BusinessName)
	if businessName == "" {
		return nil, apperrors.NewValidationError("business_name es requerido", nil)
	}
	if !rut.IsValid(req.RUT) {
		return nil, apperrors.NewValidationError("rut no es un RUT válido", nil)
	}

	now := time.Now()
	company := domain.Company{
		CompanyID:      uuid.NewString(),
		UserID:         caller.UserID,
		BusinessName:   businessName,
		LegalName:      strings.TrimSpace(req.LegalName),
		RUT:            strings.ToUpper(strings.TrimSpace(req.RUT)),
		IndustrySector: strings.TrimSpace(req.IndustrySector),
		Address:        strings.TrimSpace(req.Address),
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(409, "Ya existe una empresa con ese RUT", err)
		}
		s.LogError(ctx, err, "Failed to save company", slog.String("rut", company.RUT))
		return nil, err
	}

	s.LogInfo(ctx, "Company created",
		slog.String("company_id", company.CompanyID),
		slog.String("user_id", caller.UserID))
	return &company, nil
}

func (s *companyService) ListUserCompanies(ctx context.Context, caller domain.SessionUser) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompaniesByUser(ctx, caller.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies", slog.String("user_id", caller.UserID))
		return nil, err
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (s *companyService) AuthorizeCompanyAccess(ctx context.Context, caller domain.SessionUser, companyID string) error {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load company for authorization", slog.String("company_id", companyID))
		}
		return err
	}
	if company.UserID == caller.UserID || caller.Role.CanManageAnyCompany() {
		return nil
	}
	s.LogInfo(ctx, "Company access denied",
		slog.String("company_id", companyID),
		slog.String("user_id", caller.UserID))
	return fmt.Errorf("%w: company %s", apperrors.ErrForbidden, companyID)
}
