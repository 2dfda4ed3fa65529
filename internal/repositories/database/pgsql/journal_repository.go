package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/contapyme/contapyme_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxJournalRepository implements portsrepo.JournalRepositoryFacade over pgx.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry saves the entry header and its lines within a DB transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx) //nolint:errcheck

	entryQuery := `
		INSERT INTO journal_entries (id, company_id, entry_date, description, reference, total_debit, total_credit,
			created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.CompanyID,
		entry.EntryDate,
		entry.Description,
		nullIfEmpty(entry.Reference),
		entry.TotalDebit(),
		entry.TotalCredit(),
		entry.CreatedAt,
		nullIfEmpty(entry.CreatedBy),
		entry.LastUpdatedAt,
		nullIfEmpty(entry.LastUpdatedBy),
	)
	if err != nil {
		return translateWriteError(err, "insert journal entry "+entry.EntryID)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (id, entry_id, account_id, line_number, debit, credit, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for i, line := range entry.Lines {
		batch.Queue(lineQuery, line.LineID, entry.EntryID, line.AccountID, i+1, line.Debit, line.Credit, nullIfEmpty(line.Description))
	}

	br := tx.SendBatch(ctx, batch)
	for _, line := range entry.Lines {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateWriteError(err, "insert journal line "+line.LineID)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close journal line batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

const entrySelect = `
	SELECT id, company_id, entry_date, description, reference, created_at, created_by, updated_at, updated_by
	FROM journal_entries`

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var reference, createdBy, updatedBy *string
	err := row.Scan(&e.EntryID, &e.CompanyID, &e.EntryDate, &e.Description, &reference,
		&e.CreatedAt, &createdBy, &e.LastUpdatedAt, &updatedBy)
	if err != nil {
		return nil, err
	}
	e.Reference = deref(reference)
	e.CreatedBy = deref(createdBy)
	e.LastUpdatedBy = deref(updatedBy)
	e.Lines = []domain.JournalLine{}
	return &e, nil
}

func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := scanEntry(r.Pool.QueryRow(ctx, entrySelect+` WHERE id = $1;`, entryID))
	if err != nil {
		return nil, translateReadError(err, "journal entry "+entryID)
	}
	lines, err := r.findLines(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = append(entry.Lines, lines[entryID]...)
	return entry, nil
}

// ListEntries pages by (entry_date, created_at) descending. One extra row is fetched to
// decide whether a next token is returned.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []any{companyID}
	query := entrySelect + ` WHERE company_id = $1`
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (entry_date, created_at) < ($2, $3)`
		args = append(args, cursor.EntryDate, cursor.CreatedAt)
	}
	query += fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries for company %s: %w", companyID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeEntryCursor(pagination.EntryCursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt})
		token = &t
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range entries {
		entries[i].Lines = append(entries[i].Lines, lines[entries[i].EntryID]...)
	}
	return entries, token, nil
}

func (r *PgxJournalRepository) findLines(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	out := make(map[string][]domain.JournalLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT id, entry_id, account_id, debit, credit, description
		FROM journal_entry_lines
		WHERE entry_id = ANY($1::uuid[])
		ORDER BY entry_id, line_number;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.JournalLine
		var description *string
		if err := rows.Scan(&l.LineID, &l.EntryID, &l.AccountID, &l.Debit, &l.Credit, &description); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		l.Description = deref(description)
		out[l.EntryID] = append(out[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return out, nil
}

// TrialBalance returns only accounts with movements up to asOf. Balance is left for the
// service, which applies the account-type sign convention.
func (r *PgxJournalRepository) TrialBalance(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.id, a.code, a.name, a.account_type, t.total_debit, t.total_credit
		FROM accounts a
		JOIN (
			SELECT l.account_id, SUM(l.debit) AS total_debit, SUM(l.credit) AS total_credit
			FROM journal_entry_lines l
			JOIN journal_entries e ON e.id = l.entry_id
			WHERE e.company_id = $1 AND e.entry_date <= $2
			GROUP BY l.account_id
		) t ON t.account_id = a.id
		WHERE a.company_id = $1
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance for company %s: %w", companyID, err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		var debit, credit decimal.Decimal
		if err := rows.Scan(&row.AccountID, &row.Code, &row.Name, &accountType, &debit, &credit); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		row.TotalDebit = debit
		row.TotalCredit = credit
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}
