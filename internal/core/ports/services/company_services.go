package services

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// ListUserCompanies retrieves the companies owned by the caller.
	ListUserCompanies(ctx context.Context, caller domain.SessionUser) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateUserCompany registers a company owned by the caller.
	CreateUserCompany(ctx context.Context, req dto.CreateCompanyRequest, caller domain.SessionUser) (*domain.Company, error)
}

// CompanyAuthorizerSvc guards company-scoped operations.
type CompanyAuthorizerSvc interface {
	// AuthorizeCompanyAccess returns ErrNotFound for unknown companies and ErrForbidden
	// when the caller neither owns the company nor holds a role that manages any company.
	AuthorizeCompanyAccess(ctx context.Context, caller domain.SessionUser, companyID string) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyAuthorizerSvc
}
