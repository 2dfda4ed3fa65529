package pgsql

import (
	"context"
	"fmt"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository implements portsrepo.AccountRepositoryFacade over pgx.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountSelect = `
	SELECT a.id, a.company_id, a.code, a.name, a.account_type, a.parent_id, p.code, a.level,
		a.is_active, a.is_detail, a.created_at, a.created_by, a.updated_at, a.updated_by
	FROM accounts a
	LEFT JOIN accounts p ON p.id = a.parent_id`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var accountType string
	var parentID, parentCode, createdBy, updatedBy *string
	err := row.Scan(&a.AccountID, &a.CompanyID, &a.Code, &a.Name, &accountType, &parentID, &parentCode, &a.Level,
		&a.IsActive, &a.IsDetail, &a.CreatedAt, &createdBy, &a.LastUpdatedAt, &updatedBy)
	if err != nil {
		return nil, err
	}
	a.AccountType = domain.AccountType(accountType)
	a.ParentAccountID = deref(parentID)
	a.ParentCode = deref(parentCode)
	a.CreatedBy = deref(createdBy)
	a.LastUpdatedBy = deref(updatedBy)
	return &a, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := scanAccount(r.Pool.QueryRow(ctx, accountSelect+` WHERE a.id = $1;`, accountID))
	if err != nil {
		return nil, translateReadError(err, "account "+accountID)
	}
	return account, nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}
	rows, err := r.Pool.Query(ctx, accountSelect+` WHERE a.id = ANY($1::uuid[]);`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[a.AccountID] = *a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelect+` WHERE a.company_id = $1 ORDER BY a.code;`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

const insertAccountQuery = `
	INSERT INTO accounts (id, company_id, code, name, account_type, parent_id, level, is_active, is_detail,
		created_at, created_by, updated_at, updated_by)
	VALUES ($1, $2, $3, $4, $5,
		COALESCE($6::uuid, (SELECT id FROM accounts WHERE company_id = $2 AND code = $7)),
		$8, $9, $10, $11, $12, $13, $14)`

func accountInsertArgs(a domain.Account) []any {
	return []any{
		a.AccountID,
		a.CompanyID,
		a.Code,
		a.Name,
		string(a.AccountType),
		nullIfEmpty(a.ParentAccountID),
		nullIfEmpty(a.ParentCode),
		a.Level,
		a.IsActive,
		a.IsDetail,
		a.CreatedAt,
		nullIfEmpty(a.CreatedBy),
		a.LastUpdatedAt,
		nullIfEmpty(a.LastUpdatedBy),
	}
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	_, err := r.Pool.Exec(ctx, insertAccountQuery+`;`, accountInsertArgs(account)...)
	if err != nil {
		return translateWriteError(err, "save account "+account.Code)
	}
	return nil
}

// SaveAccounts resolves each parent by code inside the same transaction, so a chart
// can be re-initialized over a partially existing one.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) (int64, error) {
	if len(accounts) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, a := range accounts {
		batch.Queue(insertAccountQuery+` ON CONFLICT (company_id, code) DO NOTHING;`, accountInsertArgs(a)...)
	}

	br := tx.SendBatch(ctx, batch)
	var inserted int64
	for _, a := range accounts {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return 0, translateWriteError(err, "insert account "+a.Code)
		}
		inserted += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close account batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return inserted, nil
}
