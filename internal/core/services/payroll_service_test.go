package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/core/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	employeeRepo    *MockEmployeeRepository
	liquidationRepo *MockLiquidationRepository
	service         portssvc.PayrollSvcFacade
	caller          domain.SessionUser
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.employeeRepo = new(MockEmployeeRepository)
	suite.liquidationRepo = new(MockLiquidationRepository)
	suite.service = services.NewPayrollService(suite.employeeRepo, suite.liquidationRepo, services.WithCompanyAuthorizer(allowAll{}))
	suite.caller = domain.SessionUser{UserID: "user-1", Role: domain.RoleClient}
}

func (suite *PayrollServiceTestSuite) TestCreateEmployee_FormatsRUTAndAFP() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{CompanyID: "c-1", RUT: "182094420", FullName: " Ana Pérez ", AFPName: "AFP Modelo"}

	suite.employeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.RUT == "18.209.442-0" && e.AFPName == "MODELO" && e.FullName == "Ana Pérez"
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, suite.caller)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "18.209.442-0", employee.RUT)
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCreateEmployee_UnknownAFP() {
	req := dto.CreateEmployeeRequest{CompanyID: "c-1", RUT: "18209442-0", FullName: "Ana", AFPName: "Futuro"}

	_, err := suite.service.CreateEmployee(context.Background(), req, suite.caller)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *PayrollServiceTestSuite) TestCreateLiquidation_ComputesNet() {
	ctx := context.Background()
	gross := decimal.NewFromInt(850000)
	deductions := decimal.NewFromInt(161500)
	req := dto.CreateLiquidationRequest{
		CompanyID: "c-1", EmployeeRUT: "18209442-0", Period: "202403",
		GrossSalary: &gross, TotalDeductions: &deductions,
	}

	suite.liquidationRepo.On("SaveLiquidation", ctx, mock.MatchedBy(func(l domain.PayrollLiquidation) bool {
		return l.PeriodYear == 2024 && l.PeriodMonth == 3 && l.NetSalary.Equal(decimal.NewFromInt(688500))
	})).Return(nil).Once()

	liq, err := suite.service.CreateLiquidation(ctx, req, suite.caller)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), liq.NetSalary.Equal(decimal.NewFromInt(688500)))
}

func (suite *PayrollServiceTestSuite) TestCreateLiquidation_DeductionsExceedGross() {
	gross := decimal.NewFromInt(100)
	deductions := decimal.NewFromInt(101)
	req := dto.CreateLiquidationRequest{
		CompanyID: "c-1", EmployeeRUT: "18209442-0", Period: "202403",
		GrossSalary: &gross, TotalDeductions: &deductions,
	}

	_, err := suite.service.CreateLiquidation(context.Background(), req, suite.caller)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.liquidationRepo.AssertNotCalled(suite.T(), "SaveLiquidation", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestListLiquidations_BuildsFilter() {
	ctx := context.Background()
	suite.liquidationRepo.On("ListLiquidations", ctx, mock.MatchedBy(func(f portsrepo.LiquidationFilter) bool {
		return f.CompanyID == "c-1" &&
			f.PeriodYear != nil && *f.PeriodYear == 2024 &&
			f.PeriodMonth != nil && *f.PeriodMonth == 12 &&
			f.EmployeeRUT != nil && *f.EmployeeRUT == "182094420"
	})).Return(nil, nil).Once()

	liquidations, err := suite.service.ListLiquidations(ctx, dto.ListLiquidationsParams{
		CompanyID: "c-1", Period: "202412", EmployeeRUT: "18.209.442-0",
	}, suite.caller)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), liquidations)
	suite.liquidationRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestUpdateAFP_PerItemResults() {
	ctx := context.Background()
	suite.employeeRepo.On("UpdateAFPByRUT", ctx, "182094420", "MODELO", "user-1").Return(int64(1), int64(3), nil).Once()
	suite.employeeRepo.On("UpdateAFPByRUT", ctx, "111111111", "HABITAT", "user-1").Return(int64(0), int64(0), nil).Once()
	suite.employeeRepo.On("UpdateAFPByRUT", ctx, "123456785", "CUPRUM", "user-1").Return(int64(0), int64(0), errors.New("db down")).Once()

	results := suite.service.UpdateAFP(ctx, []dto.UpdateAFPItem{
		{RUT: "18.209.442-0", AFPName: "AFP Modelo"},
		{RUT: "12345678-9", AFPName: "Modelo"},
		{RUT: "18209442-0", AFPName: "Futuro"},
		{RUT: "11111111-1", AFPName: "habitat"},
		{RUT: "12345678-5", AFPName: "Cuprum"},
	}, suite.caller)

	require.Len(suite.T(), results, 5)

	assert.Equal(suite.T(), domain.AFPUpdateOK, results[0].Status)
	assert.Equal(suite.T(), "MODELO", results[0].AFPName)
	assert.Equal(suite.T(), int64(1), results[0].EmployeesUpdated)
	assert.Equal(suite.T(), int64(3), results[0].LiquidationsUpdated)

	assert.Equal(suite.T(), domain.AFPUpdateFailed, results[1].Status)
	assert.Equal(suite.T(), "RUT inválido", results[1].Error)

	assert.Equal(suite.T(), domain.AFPUpdateFailed, results[2].Status)
	assert.Equal(suite.T(), "AFP desconocida", results[2].Error)

	assert.Equal(suite.T(), domain.AFPUpdateFailed, results[3].Status)
	assert.NotEmpty(suite.T(), results[3].Error)

	assert.Equal(suite.T(), domain.AFPUpdateFailed, results[4].Status)
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestUpdateAFP_ClientLimitedToOwnCompanies() {
	ctx := context.Background()
	stranger := domain.SessionUser{UserID: "user-2", Role: domain.RoleClient}
	suite.employeeRepo.On("UpdateAFPByRUT", ctx, "182094420", "MODELO", "user-2").Return(int64(0), int64(0), nil).Once()

	results := suite.service.UpdateAFP(ctx, []dto.UpdateAFPItem{{RUT: "18.209.442-0", AFPName: "modelo"}}, stranger)

	require.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), domain.AFPUpdateFailed, results[0].Status)
	assert.Zero(suite.T(), results[0].EmployeesUpdated)
	assert.Zero(suite.T(), results[0].LiquidationsUpdated)
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestUpdateAFP_AccountantUnrestricted() {
	ctx := context.Background()
	accountant := domain.SessionUser{UserID: "user-3", Role: domain.RoleAccountant}
	suite.employeeRepo.On("UpdateAFPByRUT", ctx, "182094420", "MODELO", "").Return(int64(2), int64(4), nil).Once()

	results := suite.service.UpdateAFP(ctx, []dto.UpdateAFPItem{{RUT: "18209442-0", AFPName: "Modelo"}}, accountant)

	require.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), domain.AFPUpdateOK, results[0].Status)
	assert.Equal(suite.T(), int64(2), results[0].EmployeesUpdated)
	suite.employeeRepo.AssertExpectations(suite.T())
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}

func TestNormalizeAFPName(t *testing.T) {
	assert.Equal(t, "MODELO", services.NormalizeAFPName(" afp modelo "))
	assert.Equal(t, "PLANVITAL", services.NormalizeAFPName("Plan Vital"))
	assert.Equal(t, "UNO", services.NormalizeAFPName("UNO"))
}
