package handlers

import (
	"errors"
	"net/http"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type siiHandler struct {
	siiService portssvc.SIILookupSvc
}

func registerSIIRoutes(rg *gin.RouterGroup, siiService portssvc.SIILookupSvc) {
	h := &siiHandler{siiService: siiService}
	rg.POST("/external/sii/consulta-afp", h.lookupAFP)
}

// lookupAFP godoc
// @Summary AFP and health affiliation by RUT
// @Tags external
// @Accept json
// @Produce json
// @Param request body dto.SIIAFPLookupRequest true "RUT"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "RUT not found"
// @Router /external/sii/consulta-afp [post]
func (h *siiHandler) lookupAFP(c *gin.Context) {
	var req dto.SIIAFPLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	affiliation, err := h.siiService.LookupAFP(c.Request.Context(), req.RUT)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("No se encontró información de AFP para el RUT consultado", "not_found", nil))
			return
		}
		respondError(c, err, "Error al consultar el SII")
		return
	}
	c.JSON(http.StatusOK, dto.OK(affiliation))
}
