package handlers

import (
	"net/http"

	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type accountingConfigHandler struct {
	configService portssvc.AccountingConfigSvc
}

func registerAccountingConfigRoutes(rg *gin.RouterGroup, configService portssvc.AccountingConfigSvc) {
	h := &accountingConfigHandler{configService: configService}

	cfg := rg.Group("/accounting/centralized-config")
	{
		cfg.GET("", h.getConfig)
		cfg.POST("", h.saveConfig)
	}
}

// getConfig godoc
// @Summary Centralization accounts
// @Description Accounts used to centralize payroll and depreciation.
// @Tags accounting
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /accounting/centralized-config [get]
func (h *accountingConfigHandler) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(h.configService.GetCentralizedConfig(c.Request.Context())))
}

// saveConfig godoc
// @Summary Save centralization accounts
// @Description Accepts any JSON value and returns it stamped with updated_at. Objects are merged at the top level, other values are echoed under config. Nothing is persisted.
// @Tags accounting
// @Accept json
// @Produce json
// @Param config body object true "Configuration document"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Router /accounting/centralized-config [post]
func (h *accountingConfigHandler) saveConfig(c *gin.Context) {
	var doc any
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondBindError(c, err)
		return
	}
	saved := h.configService.SaveCentralizedConfig(c.Request.Context(), doc)
	c.JSON(http.StatusOK, dto.OK(saved).WithMessage("Configuración guardada"))
}
