package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) ListUserCompanies(ctx context.Context, caller domain.SessionUser) ([]domain.Company, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyService) CreateUserCompany(ctx context.Context, req dto.CreateCompanyRequest, caller domain.SessionUser) (*domain.Company, error) {
	args := m.Called(ctx, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) AuthorizeCompanyAccess(ctx context.Context, caller domain.SessionUser, companyID string) error {
	args := m.Called(ctx, caller, companyID)
	return args.Error(0)
}

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) ListAccounts(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockChartService) CreateBasicChartOfAccounts(ctx context.Context, companyID string, caller domain.SessionUser) (int64, []domain.Account, error) {
	args := m.Called(ctx, companyID, caller)
	if args.Get(1) == nil {
		return args.Get(0).(int64), nil, args.Error(2)
	}
	return args.Get(0).(int64), args.Get(1).([]domain.Account), args.Error(2)
}

func (m *MockChartService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, caller domain.SessionUser) (*domain.Account, error) {
	args := m.Called(ctx, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams, caller domain.SessionUser) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, params, caller)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockJournalService) TrialBalance(ctx context.Context, companyID string, asOf time.Time, caller domain.SessionUser) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, companyID, asOf, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockJournalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, caller domain.SessionUser) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock FixedAssetService ---
type MockFixedAssetService struct {
	mock.Mock
}

func (m *MockFixedAssetService) GetFixedAssetCategories(ctx context.Context) ([]domain.FixedAssetCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAssetCategory), args.Error(1)
}

func (m *MockFixedAssetService) ListFixedAssets(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, companyID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockFixedAssetService) GetFixedAssetsReport(ctx context.Context, companyID string, reportType domain.FixedAssetReportType, year int, caller domain.SessionUser) (*domain.FixedAssetReport, error) {
	args := m.Called(ctx, companyID, reportType, year, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAssetReport), args.Error(1)
}

func (m *MockFixedAssetService) CreateFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest, caller domain.SessionUser) (*domain.FixedAsset, error) {
	args := m.Called(ctx, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) ListEmployees(ctx context.Context, companyID string, caller domain.SessionUser) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockPayrollService) ListLiquidations(ctx context.Context, params dto.ListLiquidationsParams, caller domain.SessionUser) ([]domain.PayrollLiquidation, error) {
	args := m.Called(ctx, params, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollLiquidation), args.Error(1)
}

func (m *MockPayrollService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, caller domain.SessionUser) (*domain.Employee, error) {
	args := m.Called(ctx, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockPayrollService) CreateLiquidation(ctx context.Context, req dto.CreateLiquidationRequest, caller domain.SessionUser) (*domain.PayrollLiquidation, error) {
	args := m.Called(ctx, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollLiquidation), args.Error(1)
}

func (m *MockPayrollService) UpdateAFP(ctx context.Context, items []dto.UpdateAFPItem, caller domain.SessionUser) []domain.AFPUpdateResult {
	args := m.Called(ctx, items, caller)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.AFPUpdateResult)
}

// memIndicatorRepo keeps indicator values in memory, keyed by code and date.
type memIndicatorRepo struct {
	mu     sync.Mutex
	values map[string]map[string]domain.EconomicIndicator
}

func newMemIndicatorRepo() *memIndicatorRepo {
	return &memIndicatorRepo{values: map[string]map[string]domain.EconomicIndicator{}}
}

func (r *memIndicatorRepo) ListLatestIndicators(ctx context.Context) ([]domain.EconomicIndicator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.EconomicIndicator
	for _, byDate := range r.values {
		var latest *domain.EconomicIndicator
		for _, v := range byDate {
			if latest == nil || v.Date.After(latest.Date) {
				v := v
				latest = &v
			}
		}
		if latest != nil {
			out = append(out, *latest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *memIndicatorRepo) ListIndicatorHistory(ctx context.Context, code string, limit int, before *time.Time) ([]domain.EconomicIndicator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.EconomicIndicator
	for _, v := range r.values[code] {
		if before != nil && !v.Date.Before(*before) {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memIndicatorRepo) UpsertIndicator(ctx context.Context, indicator domain.EconomicIndicator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values[indicator.Code] == nil {
		r.values[indicator.Code] = map[string]domain.EconomicIndicator{}
	}
	r.values[indicator.Code][indicator.Date.Format(time.DateOnly)] = indicator
	return nil
}

func (r *memIndicatorRepo) UpsertIndicators(ctx context.Context, indicators []domain.EconomicIndicator) error {
	for _, i := range indicators {
		if err := r.UpsertIndicator(ctx, i); err != nil {
			return err
		}
	}
	return nil
}
