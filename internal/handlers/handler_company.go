package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers routes related to companies. Every route needs a session.
func registerCompanyRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies", requireSession)
	{
		companies.POST("/create", h.createCompany)
		companies.GET("", h.listCompanies)
	}
}

// createCompany godoc
// @Summary Create a company
// @Description Creates a company owned by the caller. business_name and a valid rut are required.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 409 {object} dto.Envelope "RUT already registered"
// @Failure 500 {object} dto.Envelope
// @Security SessionCookie
// @Router /companies/create [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create company", slog.String("business_name", req.BusinessName))
	company, err := h.companyService.CreateUserCompany(c.Request.Context(), req, caller)
	if err != nil {
		respondError(c, err, "Error al crear la empresa")
		return
	}

	c.JSON(http.StatusOK, dto.OKAs("company", dto.ToCompanyResponse(company)).WithMessage("Empresa creada exitosamente"))
}

// listCompanies godoc
// @Summary List the caller's companies
// @Tags companies
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security SessionCookie
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListUserCompanies(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Error al listar las empresas")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("companies", dto.ToListCompanyResponse(companies)))
}
