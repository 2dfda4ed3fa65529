package pgsql

import (
	"database/sql"

	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository around the shared pool.
// stdDB backs the schema inspector and may be nil when diagnostics are disabled.
func NewRepositoryProvider(dbPool *pgxpool.Pool, stdDB *sql.DB) portsrepo.RepositoryProvider {
	provider := portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CompanyRepo:     newPgxCompanyRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
		FixedAssetRepo:  newPgxFixedAssetRepository(dbPool),
		EmployeeRepo:    newPgxEmployeeRepository(dbPool),
		LiquidationRepo: newPgxLiquidationRepository(dbPool),
		IndicatorRepo:   newPgxIndicatorRepository(dbPool),
	}
	if stdDB != nil {
		provider.SchemaInspector = NewSchemaInspector(stdDB)
	}
	return provider
}
