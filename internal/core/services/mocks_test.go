package services_test

import (
	"context"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock repositories ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompaniesByUser(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) (int64, error) {
	args := m.Called(ctx, accounts)
	return args.Get(0).(int64), args.Error(1)
}

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) TrialBalance(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

type MockFixedAssetRepository struct {
	mock.Mock
}

func (m *MockFixedAssetRepository) ListCategories(ctx context.Context) ([]domain.FixedAssetCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAssetCategory), args.Error(1)
}

func (m *MockFixedAssetRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.FixedAssetCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAssetCategory), args.Error(1)
}

func (m *MockFixedAssetRepository) ListAssets(ctx context.Context, companyID string) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockFixedAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateAFPByRUT(ctx context.Context, rut string, afpName string, ownerUserID string) (int64, int64, error) {
	args := m.Called(ctx, rut, afpName, ownerUserID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockLiquidationRepository struct {
	mock.Mock
}

func (m *MockLiquidationRepository) ListLiquidations(ctx context.Context, filter portsrepo.LiquidationFilter) ([]domain.PayrollLiquidation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollLiquidation), args.Error(1)
}

func (m *MockLiquidationRepository) SaveLiquidation(ctx context.Context, liquidation domain.PayrollLiquidation) error {
	args := m.Called(ctx, liquidation)
	return args.Error(0)
}

type MockIndicatorRepository struct {
	mock.Mock
}

func (m *MockIndicatorRepository) ListLatestIndicators(ctx context.Context) ([]domain.EconomicIndicator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EconomicIndicator), args.Error(1)
}

func (m *MockIndicatorRepository) ListIndicatorHistory(ctx context.Context, code string, limit int, before *time.Time) ([]domain.EconomicIndicator, error) {
	args := m.Called(ctx, code, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EconomicIndicator), args.Error(1)
}

func (m *MockIndicatorRepository) UpsertIndicator(ctx context.Context, indicator domain.EconomicIndicator) error {
	args := m.Called(ctx, indicator)
	return args.Error(0)
}

func (m *MockIndicatorRepository) UpsertIndicators(ctx context.Context, indicators []domain.EconomicIndicator) error {
	args := m.Called(ctx, indicators)
	return args.Error(0)
}

// allowAll authorizes every caller.
type allowAll struct{}

func (allowAll) AuthorizeCompanyAccess(context.Context, domain.SessionUser, string) error { return nil }
