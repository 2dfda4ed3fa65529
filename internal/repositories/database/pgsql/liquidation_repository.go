package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLiquidationRepository implements portsrepo.LiquidationRepositoryFacade over pgx.
type PgxLiquidationRepository struct {
	BaseRepository
}

func newPgxLiquidationRepository(pool *pgxpool.Pool) portsrepo.LiquidationRepositoryFacade {
	return &PgxLiquidationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LiquidationRepositoryFacade = (*PgxLiquidationRepository)(nil)

func (r *PgxLiquidationRepository) SaveLiquidation(ctx context.Context, l domain.PayrollLiquidation) error {
	query := `
		INSERT INTO payroll_liquidations (id, company_id, employee_rut, afp_name, health_institution, period_year,
			period_month, gross_salary, total_deductions, net_salary, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		l.LiquidationID,
		l.CompanyID,
		l.EmployeeRUT,
		nullIfEmpty(l.AFPName),
		nullIfEmpty(l.HealthInstitution),
		l.PeriodYear,
		l.PeriodMonth,
		l.GrossSalary,
		l.TotalDeductions,
		l.NetSalary,
		l.CreatedAt,
		nullIfEmpty(l.CreatedBy),
		l.LastUpdatedAt,
		nullIfEmpty(l.LastUpdatedBy),
	)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("save liquidation %s %04d%02d", l.EmployeeRUT, l.PeriodYear, l.PeriodMonth))
	}
	return nil
}

func (r *PgxLiquidationRepository) ListLiquidations(ctx context.Context, filter portsrepo.LiquidationFilter) ([]domain.PayrollLiquidation, error) {
	conditions := []string{"company_id = $1"}
	args := []any{filter.CompanyID}
	if filter.PeriodYear != nil {
		args = append(args, *filter.PeriodYear)
		conditions = append(conditions, fmt.Sprintf("period_year = $%d", len(args)))
	}
	if filter.PeriodMonth != nil {
		args = append(args, *filter.PeriodMonth)
		conditions = append(conditions, fmt.Sprintf("period_month = $%d", len(args)))
	}
	if filter.EmployeeRUT != nil {
		args = append(args, *filter.EmployeeRUT)
		conditions = append(conditions, fmt.Sprintf(normalizedRUT, "employee_rut")+fmt.Sprintf(" = $%d", len(args)))
	}

	query := `
		SELECT id, company_id, employee_rut, afp_name, health_institution, period_year, period_month,
			gross_salary, total_deductions, net_salary, created_at, created_by, updated_at, updated_by
		FROM payroll_liquidations
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY period_year DESC, period_month DESC, employee_rut;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list liquidations for company %s: %w", filter.CompanyID, err)
	}
	defer rows.Close()

	liquidations := []domain.PayrollLiquidation{}
	for rows.Next() {
		var l domain.PayrollLiquidation
		var afp, health, createdBy, updatedBy *string
		err := rows.Scan(&l.LiquidationID, &l.CompanyID, &l.EmployeeRUT, &afp, &health, &l.PeriodYear, &l.PeriodMonth,
			&l.GrossSalary, &l.TotalDeductions, &l.NetSalary, &l.CreatedAt, &createdBy, &l.LastUpdatedAt, &updatedBy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liquidation row: %w", err)
		}
		l.AFPName = deref(afp)
		l.HealthInstitution = deref(health)
		l.CreatedBy = deref(createdBy)
		l.LastUpdatedBy = deref(updatedBy)
		liquidations = append(liquidations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating liquidation rows: %w", err)
	}
	return liquidations, nil
}
