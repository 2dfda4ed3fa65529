package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// indicatorHandler handles HTTP requests related to economic indicators.
type indicatorHandler struct {
	indicatorService portssvc.IndicatorSvcFacade
}

func newIndicatorHandler(is portssvc.IndicatorSvcFacade) *indicatorHandler {
	return &indicatorHandler{indicatorService: is}
}

// registerIndicatorRoutes registers the indicator routes. Both are public.
func registerIndicatorRoutes(rg *gin.RouterGroup, indicatorService portssvc.IndicatorSvcFacade) {
	h := newIndicatorHandler(indicatorService)

	rg.GET("/indicators", h.getIndicators)
	rg.POST("/indicators", h.updateIndicator)
}

// getIndicators godoc
// @Summary Economic indicators
// @Description Without code, the latest value of every indicator. With code, that indicator's history newest first.
// @Tags indicators
// @Produce json
// @Param code query string false "Indicator code (uf, utm, dolar...)"
// @Param limit query int false "History page size" default(30)
// @Param next_token query string false "History cursor"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /indicators [get]
func (h *indicatorHandler) getIndicators(c *gin.Context) {
	var params dto.ListIndicatorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	if params.Code == "" {
		indicators, err := h.indicatorService.GetIndicatorsDashboard(c.Request.Context())
		if err != nil {
			respondError(c, err, "Error al obtener los indicadores")
			return
		}
		c.JSON(http.StatusOK, dto.OK(dto.ToIndicatorDashboardResponse(indicators)))
		return
	}

	values, next, err := h.indicatorService.GetIndicatorHistory(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Error al obtener el historial del indicador")
		return
	}
	code := strings.ToLower(strings.TrimSpace(params.Code))
	c.JSON(http.StatusOK, dto.OK(dto.ToIndicatorHistoryResponse(code, values, next)))
}

// updateIndicator godoc
// @Summary Set an indicator value
// @Description Upserts the value of a known indicator for a date (defaults to today). value must be a non-negative number.
// @Tags indicators
// @Accept json
// @Produce json
// @Param indicator body dto.UpdateIndicatorRequest true "Indicator value"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /indicators [post]
func (h *indicatorHandler) updateIndicator(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpdateIndicatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateIndicator", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	indicator, err := h.indicatorService.UpdateIndicatorValue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Error al actualizar el indicador")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("indicator", dto.ToIndicatorResponse(indicator)).WithMessage("Indicador actualizado"))
}
