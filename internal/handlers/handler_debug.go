package handlers

import (
	"net/http"

	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type debugHandler struct {
	debugService portssvc.DebugSvc
}

func registerDebugRoutes(rg *gin.RouterGroup, debugService portssvc.DebugSvc) {
	h := &debugHandler{debugService: debugService}
	rg.GET("/debug/check-journal", h.checkJournal)
}

// checkJournal godoc
// @Summary Inspect journal tables
// @Description Columns and row counts of the journal tables. Not registered in production.
// @Tags debug
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /debug/check-journal [get]
func (h *debugHandler) checkJournal(c *gin.Context) {
	tables, err := h.debugService.CheckJournalTables(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error al inspeccionar las tablas de asientos")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("tables", tables))
}
