package repositories

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a company's accounts ordered by code.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data
type AccountWriter interface {
	// SaveAccount persists a new account. Returns ErrDuplicate if the code exists in the company.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts inserts accounts in one transaction, skipping codes that already exist,
	// and returns the number of rows inserted. Parents must precede children.
	SaveAccounts(ctx context.Context, accounts []domain.Account) (int64, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
