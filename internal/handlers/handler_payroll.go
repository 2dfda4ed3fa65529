package handlers

import (
	"log/slog"
	"net/http"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxAFPBatch bounds the number of items accepted by update-afp.
const maxAFPBatch = 500

// payrollHandler handles HTTP requests related to employees and liquidations.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

func registerPayrollRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll", requireSession)
	{
		payroll.POST("/employees/update-afp", h.updateAFP)
		payroll.POST("/employees", h.createEmployee)
		payroll.GET("/employees", h.listEmployees)
		payroll.POST("/liquidations", h.createLiquidation)
		payroll.GET("/liquidations", h.listLiquidations)
	}
}

// updateAFP godoc
// @Summary Batch update employees' AFP
// @Description Each item updates the employee and their liquidations in one transaction. Failed items are reported without aborting the batch.
// @Tags payroll
// @Accept json
// @Produce json
// @Param items body []dto.UpdateAFPItem true "RUT and AFP pairs"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security SessionCookie
// @Router /payroll/employees/update-afp [post]
func (h *payrollHandler) updateAFP(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var items []dto.UpdateAFPItem
	if err := c.ShouldBindJSON(&items); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAFP", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}
	if len(items) == 0 || len(items) > maxAFPBatch {
		respondError(c, apperrors.NewValidationError("Se requiere una lista de 1 a 500 elementos {rut, afp_name}", nil), "")
		return
	}

	results := h.payrollService.UpdateAFP(c.Request.Context(), items, caller)
	summary := dto.ToUpdateAFPSummary(results)
	logger.Info("AFP batch processed", slog.Int("updated", summary.Updated), slog.Int("failed", summary.Failed))
	c.JSON(http.StatusOK, dto.OK(summary))
}

// createEmployee godoc
// @Summary Register an employee
// @Tags payroll
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Security SessionCookie
// @Router /payroll/employees [post]
func (h *payrollHandler) createEmployee(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.payrollService.CreateEmployee(c.Request.Context(), req, caller)
	if err != nil {
		respondError(c, err, "Error al registrar el trabajador")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("employee", dto.ToEmployeeResponse(employee)).WithMessage("Trabajador registrado"))
}

// listEmployees godoc
// @Summary List a company's employees
// @Tags payroll
// @Produce json
// @Param company_id query string true "Company ID"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security SessionCookie
// @Router /payroll/employees [get]
func (h *payrollHandler) listEmployees(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	employees, err := h.payrollService.ListEmployees(c.Request.Context(), params.CompanyID, caller)
	if err != nil {
		respondError(c, err, "Error al listar los trabajadores")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("employees", dto.ToListEmployeeResponse(employees)))
}

// createLiquidation godoc
// @Summary Record a payroll liquidation
// @Description Net salary is computed as gross salary minus total deductions.
// @Tags payroll
// @Accept json
// @Produce json
// @Param liquidation body dto.CreateLiquidationRequest true "Liquidation"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope "Liquidation already exists for the period"
// @Security SessionCookie
// @Router /payroll/liquidations [post]
func (h *payrollHandler) createLiquidation(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var req dto.CreateLiquidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	liquidation, err := h.payrollService.CreateLiquidation(c.Request.Context(), req, caller)
	if err != nil {
		respondError(c, err, "Error al registrar la liquidación")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("liquidation", dto.ToLiquidationResponse(liquidation)).WithMessage("Liquidación registrada"))
}

// listLiquidations godoc
// @Summary List payroll liquidations
// @Tags payroll
// @Produce json
// @Param company_id query string true "Company ID"
// @Param period query string false "Period (YYYYMM)"
// @Param employee_rut query string false "Employee RUT"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security SessionCookie
// @Router /payroll/liquidations [get]
func (h *payrollHandler) listLiquidations(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var params dto.ListLiquidationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	liquidations, err := h.payrollService.ListLiquidations(c.Request.Context(), params, caller)
	if err != nil {
		respondError(c, err, "Error al listar las liquidaciones")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("liquidations", dto.ToListLiquidationResponse(liquidations)))
}
