package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chartHandler handles HTTP requests related to the chart of accounts.
type chartHandler struct {
	chartService portssvc.ChartSvcFacade
}

func newChartHandler(cs portssvc.ChartSvcFacade) *chartHandler {
	return &chartHandler{chartService: cs}
}

func registerChartRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc, chartService portssvc.ChartSvcFacade) {
	h := newChartHandler(chartService)

	chart := rg.Group("/chart-of-accounts", requireSession)
	{
		chart.POST("/initialize", h.initializeChart)
		chart.GET("", h.listAccounts)
		chart.POST("", h.createAccount)
	}
}

// initializeChart godoc
// @Summary Create the default chart of accounts
// @Description Creates the basic chart of accounts for a company. Accounts that already exist are kept; a run that creates nothing fails.
// @Tags chart-of-accounts
// @Accept json
// @Produce json
// @Param request body dto.InitializeChartRequest true "Company"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security SessionCookie
// @Router /chart-of-accounts/initialize [post]
func (h *chartHandler) initializeChart(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var req dto.InitializeChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger = logger.With(slog.String("company_id", req.CompanyID))
	created, accounts, err := h.chartService.CreateBasicChartOfAccounts(c.Request.Context(), req.CompanyID, caller)
	if err != nil {
		respondError(c, err, "Error al crear el plan de cuentas")
		return
	}
	if created == 0 {
		logger.Error("Basic chart of accounts created no accounts")
		c.JSON(http.StatusInternalServerError, dto.Fail("Error al crear el plan de cuentas", "internal", "no se creó ninguna cuenta"))
		return
	}

	logger.Info("Chart of accounts initialized", slog.Int64("created", created))
	c.JSON(http.StatusOK, dto.OK(dto.ChartInitializedResponse{
		CompanyID: req.CompanyID,
		Created:   created,
		Accounts:  dto.ToListAccountResponse(accounts),
	}).WithMessage("Plan de cuentas creado exitosamente"))
}

// listAccounts godoc
// @Summary List a company's accounts
// @Tags chart-of-accounts
// @Produce json
// @Param company_id query string true "Company ID"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Security SessionCookie
// @Router /chart-of-accounts [get]
func (h *chartHandler) listAccounts(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	accounts, err := h.chartService.ListAccounts(c.Request.Context(), params.CompanyID, caller)
	if err != nil {
		respondError(c, err, "Error al listar las cuentas")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("accounts", dto.ToListAccountResponse(accounts)))
}

// createAccount godoc
// @Summary Add an account to a chart
// @Description The level is derived from the parent, which must belong to the same company and share the account type.
// @Tags chart-of-accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Code already used"
// @Security SessionCookie
// @Router /chart-of-accounts [post]
func (h *chartHandler) createAccount(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.chartService.CreateAccount(c.Request.Context(), req, caller)
	if err != nil {
		respondError(c, err, "Error al crear la cuenta")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("account", dto.ToAccountResponse(account)).WithMessage("Cuenta creada exitosamente"))
}
