package pgsql

import (
	"context"
	"fmt"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade over pgx.
type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `id, user_id, business_name, legal_name, rut, industry_sector, address, phone, email,
	is_active, created_at, created_by, updated_at, updated_by`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	var legalName, sector, address, phone, email, createdBy, updatedBy *string
	err := row.Scan(&c.CompanyID, &c.UserID, &c.BusinessName, &legalName, &c.RUT, &sector, &address, &phone, &email,
		&c.IsActive, &c.CreatedAt, &createdBy, &c.LastUpdatedAt, &updatedBy)
	if err != nil {
		return nil, err
	}
	c.LegalName = deref(legalName)
	c.IndustrySector = deref(sector)
	c.Address = deref(address)
	c.Phone = deref(phone)
	c.Email = deref(email)
	c.CreatedBy = deref(createdBy)
	c.LastUpdatedBy = deref(updatedBy)
	return &c, nil
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
		INSERT INTO companies (id, user_id, business_name, legal_name, rut, industry_sector, address, phone, email,
			is_active, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.UserID,
		company.BusinessName,
		nullIfEmpty(company.LegalName),
		company.RUT,
		nullIfEmpty(company.IndustrySector),
		nullIfEmpty(company.Address),
		nullIfEmpty(company.Phone),
		nullIfEmpty(company.Email),
		company.IsActive,
		company.CreatedAt,
		nullIfEmpty(company.CreatedBy),
		company.LastUpdatedAt,
		nullIfEmpty(company.LastUpdatedBy),
	)
	if err != nil {
		return translateWriteError(err, "save company with RUT "+company.RUT)
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1;`
	company, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		return nil, translateReadError(err, "company "+companyID)
	}
	return company, nil
}

func (r *PgxCompanyRepository) ListCompaniesByUser(ctx context.Context, userID string) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies for user %s: %w", userID, err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}
	return companies, nil
}
