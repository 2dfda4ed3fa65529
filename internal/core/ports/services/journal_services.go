package services

import (
	"context"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// ListJournalEntries retrieves a page of entries, newest first.
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams, caller domain.SessionUser) ([]domain.JournalEntry, *string, error)

	// TrialBalance sums postings per account up to asOf.
	TrialBalance(ctx context.Context, companyID string, asOf time.Time, caller domain.SessionUser) ([]domain.TrialBalanceRow, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournalEntry validates balance and account ownership, then persists the entry.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, caller domain.SessionUser) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}

// DebugSvc exposes diagnostics that are disabled in production.
type DebugSvc interface {
	CheckJournalTables(ctx context.Context) ([]domain.JournalTableInfo, error)
}
