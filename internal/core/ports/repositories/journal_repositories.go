package repositories

import (
	"context"
	"time"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of a company's entries, newest first, with their lines.
	// nextToken is the opaque cursor returned by a previous call.
	ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveEntry persists an entry and its lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalReporter aggregates journal lines for reports
type JournalReporter interface {
	// TrialBalance sums debits and credits per account up to asOf (inclusive).
	TrialBalance(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	JournalReporter
}

// JournalSchemaInspector reports the shape of the journal tables for diagnostics.
type JournalSchemaInspector interface {
	InspectJournalTables(ctx context.Context) ([]domain.JournalTableInfo, error)
}
