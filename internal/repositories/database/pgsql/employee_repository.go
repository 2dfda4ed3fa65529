package pgsql

import (
	"context"
	"fmt"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade over pgx.
type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

// normalizedRUT strips formatting from a stored RUT so "18.209.442-0" matches "182094420".
const normalizedRUT = `upper(regexp_replace(%s, '[^0-9kK]', '', 'g'))`

// ownedCompanyClause is a no-op when $3 is empty.
const ownedCompanyClause = ` AND ($3 = '' OR company_id IN (SELECT id FROM companies WHERE user_id::text = $3))`

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (id, company_id, rut, full_name, afp_name, health_institution, is_active,
			created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.CompanyID,
		employee.RUT,
		employee.FullName,
		nullIfEmpty(employee.AFPName),
		nullIfEmpty(employee.HealthInstitution),
		employee.IsActive,
		employee.CreatedAt,
		nullIfEmpty(employee.CreatedBy),
		employee.LastUpdatedAt,
		nullIfEmpty(employee.LastUpdatedBy),
	)
	if err != nil {
		return translateWriteError(err, "save employee "+employee.RUT)
	}
	return nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	query := `
		SELECT id, company_id, rut, full_name, afp_name, health_institution, is_active,
			created_at, created_by, updated_at, updated_by
		FROM employees
		WHERE company_id = $1
		ORDER BY full_name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for company %s: %w", companyID, err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		var afp, health, createdBy, updatedBy *string
		err := rows.Scan(&e.EmployeeID, &e.CompanyID, &e.RUT, &e.FullName, &afp, &health, &e.IsActive,
			&e.CreatedAt, &createdBy, &e.LastUpdatedAt, &updatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		e.AFPName = deref(afp)
		e.HealthInstitution = deref(health)
		e.CreatedBy = deref(createdBy)
		e.LastUpdatedBy = deref(updatedBy)
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

// UpdateAFPByRUT expects rut already cleaned (digits plus an upper-case K). A non-empty ownerUserID
// limits both updates to companies owned by that user.
func (r *PgxEmployeeRepository) UpdateAFPByRUT(ctx context.Context, rut string, afpName string, ownerUserID string) (int64, int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	employeesTag, err := tx.Exec(ctx,
		`UPDATE employees SET afp_name = $2, updated_at = NOW() WHERE `+fmt.Sprintf(normalizedRUT, "rut")+` = $1`+ownedCompanyClause+`;`,
		rut, afpName, ownerUserID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update employee AFP for %s: %w", rut, err)
	}

	liquidationsTag, err := tx.Exec(ctx,
		`UPDATE payroll_liquidations SET afp_name = $2, updated_at = NOW() WHERE `+fmt.Sprintf(normalizedRUT, "employee_rut")+` = $1`+ownedCompanyClause+`;`,
		rut, afpName, ownerUserID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update liquidation AFP for %s: %w", rut, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return employeesTag.RowsAffected(), liquidationsTag.RowsAffected(), nil
}
