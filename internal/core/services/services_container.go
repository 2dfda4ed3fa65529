package services

import (
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Company service first: it authorizes every company-scoped service.
	container.Company = NewCompanyService(repos.CompanyRepo)
	authorizer := WithCompanyAuthorizer(container.Company)

	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Chart = NewChartService(repos.AccountRepo, authorizer)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, authorizer)
	container.FixedAsset = NewFixedAssetService(repos.FixedAssetRepo, authorizer)
	container.Payroll = NewPayrollService(repos.EmployeeRepo, repos.LiquidationRepo, authorizer)
	container.Indicator = NewIndicatorService(repos.IndicatorRepo)
	container.SII = NewSIIService()
	container.AccountingCfg = NewAccountingConfigService()
	container.Debug = NewDebugService(repos.SchemaInspector)

	return container
}
