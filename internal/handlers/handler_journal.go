package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries and the trial balance.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

func registerJournalRoutes(rg *gin.RouterGroup, requireSession gin.HandlerFunc, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries", requireSession)
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
	}
	rg.GET("/accounting/trial-balance", requireSession, h.getTrialBalance)
}

// createJournalEntry godoc
// @Summary Record a journal entry
// @Description Debits must equal credits and every line must post to an active detail account of the company.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope "Invalid or unbalanced entry"
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security SessionCookie
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalEntry", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, caller)
	if err != nil {
		respondError(c, err, "Error al registrar el asiento")
		return
	}
	c.JSON(http.StatusOK, dto.OKAs("entry", dto.ToJournalEntryResponse(entry)).WithMessage("Asiento registrado"))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Newest first, cursor paginated through next_token.
// @Tags journal-entries
// @Produce json
// @Param company_id query string true "Company ID"
// @Param limit query int false "Page size" default(20)
// @Param next_token query string false "Cursor from the previous page"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Security SessionCookie
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	entries, next, err := h.journalService.ListJournalEntries(c.Request.Context(), params, caller)
	if err != nil {
		respondError(c, err, "Error al listar los asientos")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListJournalEntriesResponse(entries, next)))
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Debit and credit totals per account up to as_of (defaults to today).
// @Tags accounting
// @Produce json
// @Param company_id query string true "Company ID"
// @Param as_of query string false "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Security SessionCookie
// @Router /accounting/trial-balance [get]
func (h *journalHandler) getTrialBalance(c *gin.Context) {
	caller, ok := sessionCaller(c)
	if !ok {
		return
	}

	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	asOf := time.Now()
	if params.AsOf != "" {
		// Format already checked by the binding rule.
		asOf, _ = time.Parse(time.DateOnly, params.AsOf)
	}

	rows, err := h.journalService.TrialBalance(c.Request.Context(), params.CompanyID, asOf, caller)
	if err != nil {
		respondError(c, err, "Error al generar el balance de comprobación")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTrialBalanceResponse(params.CompanyID, asOf, rows)))
}
