package services

import portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"

// ServiceOption configures the BaseService embedded in company-scoped services.
type ServiceOption func(*BaseService)

// WithCompanyAuthorizer sets the authorizer used by company-scoped operations.
func WithCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) ServiceOption {
	return func(s *BaseService) {
		s.CompanyAuthorizer = authorizer
	}
}

func newBaseService(opts []ServiceOption) BaseService {
	base := BaseService{}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
