package handlers

import (
	"net/http"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// fixedAssetHandler handles HTTP requests related to fixed assets.
type fixedAssetHandler struct {
	assetService portssvc.FixedAssetSvcFacade
}

func newFixedAssetHandler(fs portssvc.FixedAssetSvcFacade) *fixedAssetHandler {
	return &fixedAssetHandler{assetService: fs}
}

// registerFixedAssetRoutes registers fixed asset routes. Categories are reference data and public.
func registerFixedAssetRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc, assetService portssvc.FixedAssetSvcFacade) {
	h := newFixedAssetHandler(assetService)

	assets := rg.Group("/fixed-assets")
	{
		assets.GET("/categories", h.listCategories)
		assets.GET("/reports", requireSession, h.getReport)
		assets.GET("", requireSession, h.listAssets)
		assets.POST("", requireSession, h.createAsset)
	}
}

// listCategories godoc
// @Summary List fixed asset categories
// @Tags fixed-assets
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /fixed-assets/categories [get]
func (h *fixedAssetHandler) listCategories(c *gin.Context) {
	categories, err := h.assetService.GetFixedAssetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error al obtener las categorías")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("categories", categories))
}

// listAssets godoc
// @Summary List a company's fixed assets
// @Tags fixed-assets
// @Produce json
// @Param company_id query string true "Company ID"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security SessionCookie
// @Router /fixed-assets [get]
func (h *fixedAssetHandler) listAssets(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var params dto.ListFixedAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	assets, err := h.assetService.ListFixedAssets(c.Request.Context(), params.CompanyID, caller)
	if err != nil {
		respondError(c, err, "Error al listar los activos fijos")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("assets", dto.ToListFixedAssetResponse(assets)))
}

// createAsset godoc
// @Summary Register a fixed asset
// @Description Useful life and residual value default to the category's parameters.
// @Tags fixed-assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateFixedAssetRequest true "Asset"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security SessionCookie
// @Router /fixed-assets [post]
func (h *fixedAssetHandler) createAsset(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var req dto.CreateFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	asset, err := h.assetService.CreateFixedAsset(c.Request.Context(), req, caller)
	if err != nil {
		respondError(c, err, "Error al registrar el activo fijo")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("asset", dto.ToFixedAssetResponse(asset)).WithMessage("Activo fijo registrado"))
}

// getReport godoc
// @Summary Fixed asset report
// @Description summary aggregates per category; depreciation lists each asset's straight-line depreciation for the year.
// @Tags fixed-assets
// @Produce json
// @Param company_id query string true "Company ID"
// @Param type query string true "summary or depreciation"
// @Param year query int false "Report year (defaults to the current year)"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Security SessionCookie
// @Router /fixed-assets/reports [get]
func (h *fixedAssetHandler) getReport(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var params dto.FixedAssetReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	report, err := h.assetService.GetFixedAssetsReport(c.Request.Context(), params.CompanyID, domain.FixedAssetReportType(params.Type), params.Year, caller)
	if err != nil {
		respondError(c, err, "Error al generar el reporte de activos fijos")
		return
	}
	c.JSON(http.StatusOK, dto.OK(report))
}
