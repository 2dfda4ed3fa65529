package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/core/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/handlers"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/contapyme/contapyme_backend/internal/platform/config"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/contapyme/contapyme_backend/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret    = "handlers-test-secret"
	testCompanyID = "5b0a4c3e-2f8d-4e1a-9c6b-7d2e1f3a4b5c"
)

type HandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	cfg         *config.Config
	auth        *MockAuthService
	company     *MockCompanyService
	chart       *MockChartService
	journal     *MockJournalService
	fixedAsset  *MockFixedAssetService
	payroll     *MockPayrollService
	caller      domain.SessionUser
	callerToken string
}

func (s *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.RegisterCustomValidators())
}

func (s *HandlersTestSuite) SetupTest() {
	s.cfg = &config.Config{
		SessionSecret:         testSecret,
		SessionCookieName:     "contapyme_session",
		SessionIssuer:         "contapyme",
		SessionExpiryDuration: time.Hour,
		PendingRedirectMaxAge: 5 * time.Minute,
		LoginRateLimit:        "100-M",
	}
	s.auth = new(MockAuthService)
	s.company = new(MockCompanyService)
	s.chart = new(MockChartService)
	s.journal = new(MockJournalService)
	s.fixedAsset = new(MockFixedAssetService)
	s.payroll = new(MockPayrollService)

	container := &portssvc.ServiceContainer{
		Auth:          s.auth,
		Company:       s.company,
		Chart:         s.chart,
		Journal:       s.journal,
		FixedAsset:    s.fixedAsset,
		Payroll:       s.payroll,
		Indicator:     services.NewIndicatorService(newMemIndicatorRepo()),
		SII:           services.NewSIIService(),
		AccountingCfg: services.NewAccountingConfigService(),
	}

	s.router = gin.New()
	s.router.Use(middleware.SessionMiddleware(s.cfg.SessionCookieName, s.cfg.SessionSecret))
	handlers.RegisterRoutes(s.router, s.cfg, container)

	s.caller = domain.SessionUser{UserID: "user-1", Email: "ana@example.cl", Role: domain.RoleClient}
	token, err := utils.GenerateSessionToken(s.caller, testSecret, time.Hour, s.cfg.SessionIssuer)
	s.Require().NoError(err)
	s.callerToken = token
}

func (s *HandlersTestSuite) TearDownTest() {
	s.auth.AssertExpectations(s.T())
	s.company.AssertExpectations(s.T())
	s.chart.AssertExpectations(s.T())
	s.journal.AssertExpectations(s.T())
	s.fixedAsset.AssertExpectations(s.T())
	s.payroll.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

// --- helpers ---

func (s *HandlersTestSuite) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) session() *http.Cookie {
	return &http.Cookie{Name: s.cfg.SessionCookieName, Value: s.callerToken}
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// --- health ---

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

// --- companies ---

func (s *HandlersTestSuite) TestCreateCompany_NoSession() {
	w := s.do(http.MethodPost, "/api/companies/create", map[string]any{"business_name": "Acme", "rut": "18209442-0"})

	s.Equal(http.StatusUnauthorized, w.Code)
	body := s.decode(w)
	s.Equal(false, body["success"])
	s.Equal("No autorizado", body["error"])
}

func (s *HandlersTestSuite) TestCreateCompany_InvalidRUT() {
	w := s.do(http.MethodPost, "/api/companies/create",
		map[string]any{"business_name": "Acme", "rut": "18209442-5"}, s.session())

	s.Equal(http.StatusBadRequest, w.Code)
	body := s.decode(w)
	s.Equal(validation.InvalidDataMessage, body["error"])
	s.Equal("validation", body["kind"])
	s.Contains(w.Body.String(), "rut")
}

func (s *HandlersTestSuite) TestCreateCompany_MissingName() {
	w := s.do(http.MethodPost, "/api/companies/create", map[string]any{"rut": "18209442-0"}, s.session())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "business_name")
}

func (s *HandlersTestSuite) TestCreateCompany_Success() {
	req := dto.CreateCompanyRequest{BusinessName: "Acme SpA", RUT: "18209442-0"}
	created := &domain.Company{
		CompanyID:    testCompanyID,
		UserID:       s.caller.UserID,
		BusinessName: "Acme SpA",
		RUT:          "18209442-0",
		IsActive:     true,
	}
	s.company.On("CreateUserCompany", mock.Anything, req, s.caller).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/companies/create", req, s.session())

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	body := s.decode(w)
	s.Equal(true, body["success"])
	s.Equal("Empresa creada exitosamente", body["message"])
	company := body["company"].(map[string]any)
	s.Equal("18209442-0", company["rut"])
	s.Equal(testCompanyID, company["id"])
}

func (s *HandlersTestSuite) TestCreateCompany_Duplicate() {
	req := dto.CreateCompanyRequest{BusinessName: "Acme SpA", RUT: "18209442-0"}
	s.company.On("CreateUserCompany", mock.Anything, req, s.caller).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "Ya existe una empresa con ese RUT", apperrors.ErrDuplicate)).Once()

	w := s.do(http.MethodPost, "/api/companies/create", req, s.session())

	s.Equal(http.StatusConflict, w.Code)
	body := s.decode(w)
	s.Equal("Ya existe una empresa con ese RUT", body["error"])
	s.Equal("duplicate", body["kind"])
}

func (s *HandlersTestSuite) TestListCompanies() {
	s.company.On("ListUserCompanies", mock.Anything, s.caller).Return([]domain.Company{}, nil).Once()

	w := s.do(http.MethodGet, "/api/companies", nil, s.session())

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"companies":[]}`, w.Body.String())
}

// --- indicators ---

func (s *HandlersTestSuite) TestIndicators_NegativeValueRejected() {
	w := s.do(http.MethodPost, "/api/indicators", map[string]any{"code": "uf", "value": -1})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("validation", s.decode(w)["kind"])
}

func (s *HandlersTestSuite) TestIndicators_UnknownCodeRejected() {
	w := s.do(http.MethodPost, "/api/indicators", map[string]any{"code": "peso", "value": 1})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.decode(w)["error"], "Indicador desconocido")
}

func (s *HandlersTestSuite) TestIndicators_UpdateThenRead() {
	w := s.do(http.MethodPost, "/api/indicators", map[string]any{"code": "UF", "value": 37000.5, "date": "2024-05-02"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	indicator := s.decode(w)["indicator"].(map[string]any)
	s.Equal("uf", indicator["code"])
	s.Equal("2024-05-02", indicator["date"])
	s.Equal("$37.000,50", indicator["display"])

	w = s.do(http.MethodGet, "/api/indicators", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	data := s.decode(w)["data"].(map[string]any)
	list := data["indicators"].([]any)
	s.Require().Len(list, 1)
	s.Equal("uf", list[0].(map[string]any)["code"])

	w = s.do(http.MethodGet, "/api/indicators?code=uf&limit=5", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	history := s.decode(w)["data"].(map[string]any)
	s.Equal("uf", history["code"])
	s.Len(history["values"], 1)
	s.Nil(history["next_token"])
}

// --- SII ---

func (s *HandlersTestSuite) TestConsultaAFP_Found() {
	w := s.do(http.MethodPost, "/api/external/sii/consulta-afp", map[string]any{"rut": "18.209.442-0"})

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	data := s.decode(w)["data"].(map[string]any)
	s.Equal("MODELO", data["afp_name"])
	s.Equal("FONASA", data["health_institution"])
}

func (s *HandlersTestSuite) TestConsultaAFP_NotFound() {
	w := s.do(http.MethodPost, "/api/external/sii/consulta-afp", map[string]any{"rut": "9.876.543-3"})

	s.Equal(http.StatusNotFound, w.Code)
	body := s.decode(w)
	s.Equal("not_found", body["kind"])
	s.Equal("No se encontró información de AFP para el RUT consultado", body["error"])
}

func (s *HandlersTestSuite) TestConsultaAFP_MissingRUT() {
	w := s.do(http.MethodPost, "/api/external/sii/consulta-afp", map[string]any{})
	s.Equal(http.StatusBadRequest, w.Code)
}

// --- accounting config ---

func (s *HandlersTestSuite) TestCentralizedConfig() {
	w := s.do(http.MethodGet, "/api/accounting/centralized-config", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(s.decode(w)["success"].(bool))

	w = s.do(http.MethodPost, "/api/accounting/centralized-config", map[string]any{"payroll_expense": "4.1.1"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Contains(w.Body.String(), "updated_at")
	s.Contains(w.Body.String(), "4.1.1")

	w = s.do(http.MethodPost, "/api/accounting/centralized-config", "not json")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestCentralizedConfig_NonObjectBody() {
	w := s.do(http.MethodPost, "/api/accounting/centralized-config", []any{"4.1.1", "2.1.06"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	data := s.decode(w)["data"].(map[string]any)
	s.Equal([]any{"4.1.1", "2.1.06"}, data["config"])
	s.NotEmpty(data["updated_at"])

	w = s.do(http.MethodPost, "/api/accounting/centralized-config", "42")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(float64(42), s.decode(w)["data"].(map[string]any)["config"])
}

// --- payroll ---

func (s *HandlersTestSuite) TestUpdateAFP_PerItemResults() {
	items := []dto.UpdateAFPItem{
		{RUT: "18.209.442-0", AFPName: "modelo"},
		{RUT: "bad", AFPName: "habitat"},
	}
	results := []domain.AFPUpdateResult{
		{RUT: "18.209.442-0", AFPName: "MODELO", Status: domain.AFPUpdateOK, EmployeesUpdated: 1, LiquidationsUpdated: 3},
		{RUT: "bad", AFPName: "habitat", Status: domain.AFPUpdateFailed, Error: "RUT inválido"},
	}
	s.payroll.On("UpdateAFP", mock.Anything, items, s.caller).Return(results).Once()

	w := s.do(http.MethodPost, "/api/payroll/employees/update-afp", items, s.session())

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	data := s.decode(w)["data"].(map[string]any)
	s.EqualValues(2, data["total"])
	s.EqualValues(1, data["updated"])
	s.EqualValues(1, data["failed"])
	rows := data["results"].([]any)
	s.Equal("RUT inválido", rows[1].(map[string]any)["error"])
}

func (s *HandlersTestSuite) TestUpdateAFP_EmptyBatch() {
	w := s.do(http.MethodPost, "/api/payroll/employees/update-afp", []dto.UpdateAFPItem{}, s.session())
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestUpdateAFP_RequiresSession() {
	w := s.do(http.MethodPost, "/api/payroll/employees/update-afp", []dto.UpdateAFPItem{{RUT: "1-9", AFPName: "modelo"}})
	s.Equal(http.StatusUnauthorized, w.Code)
}

// --- journal ---

func (s *HandlersTestSuite) TestCreateJournalEntry_Unbalanced() {
	body := `{"company_id":"` + testCompanyID + `","entry_date":"2024-05-02","description":"Venta",
		"lines":[{"account_id":"0e7c6a1d-1111-4d2b-9a3c-000000000001","debit":1000},
		         {"account_id":"0e7c6a1d-1111-4d2b-9a3c-000000000002","credit":900}]}`
	s.journal.On("CreateJournalEntry", mock.Anything, mock.AnythingOfType("dto.CreateJournalEntryRequest"), s.caller).
		Return(nil, apperrors.NewValidationError("El asiento no cuadra", nil)).Once()

	w := s.do(http.MethodPost, "/api/journal-entries", body, s.session())

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("El asiento no cuadra", s.decode(w)["error"])
}

func (s *HandlersTestSuite) TestCreateJournalEntry_TooFewLines() {
	body := `{"company_id":"` + testCompanyID + `","entry_date":"2024-05-02","description":"Venta",
		"lines":[{"account_id":"0e7c6a1d-1111-4d2b-9a3c-000000000001","debit":1000}]}`

	w := s.do(http.MethodPost, "/api/journal-entries", body, s.session())

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "lines")
}

func (s *HandlersTestSuite) TestTrialBalance_Forbidden() {
	s.journal.On("TrialBalance", mock.Anything, testCompanyID, mock.AnythingOfType("time.Time"), s.caller).
		Return(nil, apperrors.ErrForbidden).Once()

	w := s.do(http.MethodGet, "/api/accounting/trial-balance?company_id="+testCompanyID+"&as_of=2024-12-31", nil, s.session())

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("forbidden", s.decode(w)["kind"])
}

// --- fixed assets ---

func (s *HandlersTestSuite) TestFixedAssetReport_InvalidType() {
	w := s.do(http.MethodGet, "/api/fixed-assets/reports?company_id="+testCompanyID+"&type=balance", nil, s.session())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "type")
}

func (s *HandlersTestSuite) TestFixedAssetReport_Summary() {
	report := &domain.FixedAssetReport{Type: domain.ReportSummary}
	s.fixedAsset.On("GetFixedAssetsReport", mock.Anything, testCompanyID, domain.ReportSummary, 2024, s.caller).
		Return(report, nil).Once()

	w := s.do(http.MethodGet, "/api/fixed-assets/reports?company_id="+testCompanyID+"&type=summary&year=2024", nil, s.session())

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("summary", s.decode(w)["data"].(map[string]any)["type"])
}

func (s *HandlersTestSuite) TestFixedAssetCategories_Public() {
	s.fixedAsset.On("GetFixedAssetCategories", mock.Anything).Return([]domain.FixedAssetCategory{}, nil).Once()

	w := s.do(http.MethodGet, "/api/fixed-assets/categories", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"categories":[]}`, w.Body.String())
}

// --- chart of accounts ---

func (s *HandlersTestSuite) TestInitializeChart_NothingCreated() {
	s.chart.On("CreateBasicChartOfAccounts", mock.Anything, testCompanyID, s.caller).
		Return(int64(0), []domain.Account{}, nil).Once()

	w := s.do(http.MethodPost, "/api/chart-of-accounts/initialize", map[string]any{"company_id": testCompanyID}, s.session())

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal(false, s.decode(w)["success"])
}

// --- auth ---

func (s *HandlersTestSuite) TestLogin_SetsCookies() {
	user := &domain.User{UserID: "user-1", Email: "ana@example.cl", Role: domain.RoleClient}
	s.auth.On("Login", mock.Anything, "ana@example.cl", "secreto123").Return(user, "signed-token", nil).Once()

	w := s.do(http.MethodPost, "/api/auth/login",
		map[string]any{"email": "ana@example.cl", "password": "secreto123", "redirect_to": "/dashboard"})

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	session := findCookie(w, s.cfg.SessionCookieName)
	s.Require().NotNil(session)
	s.Equal("signed-token", session.Value)
	s.True(session.HttpOnly)
	redirect := findCookie(w, handlers.PendingRedirectCookie)
	s.Require().NotNil(redirect)
	s.Equal("/dashboard", redirect.Value)
	s.Equal("Sesión iniciada", s.decode(w)["message"])
}

func (s *HandlersTestSuite) TestLogin_RejectsExternalRedirect() {
	for _, target := range []string{"//evil.example/phish", "/\\evil.example", "https://evil.example"} {
		w := s.do(http.MethodPost, "/api/auth/login",
			map[string]any{"email": "ana@example.cl", "password": "secreto123", "redirect_to": target})

		s.Equal(http.StatusBadRequest, w.Code, target)
		s.Nil(findCookie(w, handlers.PendingRedirectCookie), target)
		s.Nil(findCookie(w, s.cfg.SessionCookieName), target)
	}
	s.auth.AssertNotCalled(s.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestSession_DropsForgedExternalRedirect() {
	forged := &http.Cookie{Name: handlers.PendingRedirectCookie, Value: "//evil.example"}

	w := s.do(http.MethodGet, "/api/auth/session", nil, s.session(), forged)

	s.Require().Equal(http.StatusOK, w.Code)
	session := s.decode(w)["session"].(map[string]any)
	s.Equal(true, session["authenticated"])
	s.NotContains(session, "pending_redirect")
}

func (s *HandlersTestSuite) TestLogin_WrongPassword() {
	s.auth.On("Login", mock.Anything, "ana@example.cl", "nope-nope").Return(nil, "", apperrors.ErrUnauthorized).Once()

	w := s.do(http.MethodPost, "/api/auth/login", map[string]any{"email": "ana@example.cl", "password": "nope-nope"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Nil(findCookie(w, s.cfg.SessionCookieName))
}

func (s *HandlersTestSuite) TestRegister_Duplicate() {
	req := dto.RegisterRequest{Email: "ana@example.cl", Password: "secreto123", Name: "Ana"}
	s.auth.On("Register", mock.Anything, req).Return(nil, apperrors.ErrDuplicate).Once()

	w := s.do(http.MethodPost, "/api/auth/register", req)

	s.Equal(http.StatusConflict, w.Code)
	s.Equal("El correo ya está registrado", s.decode(w)["error"])
}

func (s *HandlersTestSuite) TestSession_Anonymous() {
	w := s.do(http.MethodGet, "/api/auth/session", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"session":{"authenticated":false}}`, w.Body.String())
}

func (s *HandlersTestSuite) TestSession_ReturnsPendingRedirectOnce() {
	w := s.do(http.MethodGet, "/api/auth/session", nil,
		s.session(), &http.Cookie{Name: handlers.PendingRedirectCookie, Value: "/payroll"})

	s.Require().Equal(http.StatusOK, w.Code)
	session := s.decode(w)["session"].(map[string]any)
	s.Equal(true, session["authenticated"])
	s.Equal("/payroll", session["pending_redirect"])
	s.Equal("ana@example.cl", session["user"].(map[string]any)["email"])

	cleared := findCookie(w, handlers.PendingRedirectCookie)
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
	s.True(cleared.MaxAge < 0)
}

func (s *HandlersTestSuite) TestLogout_ClearsCookies() {
	w := s.do(http.MethodDelete, "/api/auth/session", nil, s.session())

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Sesión cerrada", s.decode(w)["message"])
	cleared := findCookie(w, s.cfg.SessionCookieName)
	s.Require().NotNil(cleared)
	s.True(cleared.MaxAge < 0)
}

func (s *HandlersTestSuite) TestExpiredSessionIsAnonymous() {
	token, err := utils.GenerateSessionToken(s.caller, testSecret, -time.Minute, s.cfg.SessionIssuer)
	s.Require().NoError(err)

	w := s.do(http.MethodGet, "/api/companies", nil, &http.Cookie{Name: s.cfg.SessionCookieName, Value: token})

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestSwaggerServedOutsideProduction() {
	w := s.do(http.MethodGet, "/swagger/doc.json", nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(strings.Contains(w.Body.String(), "ContaPyme Backend API"))
}
