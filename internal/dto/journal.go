package dto

import (
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit posting of a new entry.
type JournalLineRequest struct {
	AccountID   string          `json:"account_id" binding:"required,uuid"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description" binding:"omitempty,max=255"`
}

// CreateJournalEntryRequest defines the data needed to record a journal entry.
type CreateJournalEntryRequest struct {
	CompanyID   string               `json:"company_id" binding:"required,uuid"`
	EntryDate   string               `json:"entry_date" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description" binding:"required,max=500"`
	Reference   string               `json:"reference" binding:"omitempty,max=100"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	CompanyID string  `form:"company_id" binding:"required,uuid"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"next_token"`
}

// TrialBalanceParams defines query parameters for the trial balance.
type TrialBalanceParams struct {
	CompanyID string `form:"company_id" binding:"required,uuid"`
	AsOf      string `form:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

// JournalLineResponse defines the data returned for one posting.
type JournalLineResponse struct {
	LineID      string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"id"`
	CompanyID   string                `json:"company_id"`
	EntryDate   string                `json:"entry_date"`
	Description string                `json:"description"`
	Reference   string                `json:"reference,omitempty"`
	TotalDebit  decimal.Decimal       `json:"total_debit"`
	TotalCredit decimal.Decimal       `json:"total_credit"`
	Lines       []JournalLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"created_at"`
	CreatedBy   string                `json:"created_by,omitempty"`
}

// ListJournalEntriesResponse is a page of entries with the cursor of the next page.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"next_token,omitempty"`
}

// TrialBalanceResponse lists per-account totals at a date.
type TrialBalanceResponse struct {
	CompanyID   string                   `json:"company_id"`
	AsOf        string                   `json:"as_of"`
	Rows        []domain.TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal          `json:"total_debit"`
	TotalCredit decimal.Decimal          `json:"total_credit"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:      l.LineID,
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		CompanyID:   e.CompanyID,
		EntryDate:   e.EntryDate.Format(time.DateOnly),
		Description: e.Description,
		Reference:   e.Reference,
		TotalDebit:  e.TotalDebit(),
		TotalCredit: e.TotalCredit(),
		Lines:       lines,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToListJournalEntriesResponse converts a page of entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	res := ListJournalEntriesResponse{Entries: make([]JournalEntryResponse, len(entries)), NextToken: nextToken}
	for i := range entries {
		res.Entries[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}

// ToTrialBalanceResponse totals the rows of a trial balance.
func ToTrialBalanceResponse(companyID string, asOf time.Time, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	res := TrialBalanceResponse{
		CompanyID:   companyID,
		AsOf:        asOf.Format(time.DateOnly),
		Rows:        rows,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	if res.Rows == nil {
		res.Rows = []domain.TrialBalanceRow{}
	}
	for _, r := range rows {
		res.TotalDebit = res.TotalDebit.Add(r.TotalDebit)
		res.TotalCredit = res.TotalCredit.Add(r.TotalCredit)
	}
	return res
}
