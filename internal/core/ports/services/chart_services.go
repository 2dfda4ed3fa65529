package services

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
)

// ChartReaderSvc defines read operations for a chart of accounts
type ChartReaderSvc interface {
	// ListAccounts retrieves a company's accounts ordered by code.
	ListAccounts(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.Account, error)
}

// ChartWriterSvc defines write operations for a chart of accounts
type ChartWriterSvc interface {
	// CreateBasicChartOfAccounts inserts the default Chilean chart for a company and returns
	// the number of accounts created together with the resulting chart.
	CreateBasicChartOfAccounts(ctx context.Context, companyID string, caller domain.SessionUser) (int64, []domain.Account, error)

	// CreateAccount adds one account. Level is derived from the parent.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, caller domain.SessionUser) (*domain.Account, error)
}

// ChartSvcFacade combines all chart-of-accounts service interfaces
type ChartSvcFacade interface {
	ChartReaderSvc
	ChartWriterSvc
}
