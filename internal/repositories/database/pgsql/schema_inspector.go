package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
)

// journalTables are the tables reported by the journal diagnostics endpoint.
var journalTables = []string{"journal_entries", "journal_entry_lines"}

// SchemaInspector reads information_schema through database/sql. It shares the
// pgx stdlib driver with the migration runner.
type SchemaInspector struct {
	db *sql.DB
}

// NewSchemaInspector creates a SchemaInspector over db.
func NewSchemaInspector(db *sql.DB) *SchemaInspector {
	return &SchemaInspector{db: db}
}

var _ portsrepo.JournalSchemaInspector = (*SchemaInspector)(nil)

const columnsQuery = `
	SELECT column_name, data_type, is_nullable
	FROM information_schema.columns
	WHERE table_schema = 'public' AND table_name = $1
	ORDER BY ordinal_position;`

func (s *SchemaInspector) InspectJournalTables(ctx context.Context) ([]domain.JournalTableInfo, error) {
	infos := make([]domain.JournalTableInfo, 0, len(journalTables))
	for _, table := range journalTables {
		info, err := s.inspectTable(ctx, table)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *SchemaInspector) inspectTable(ctx context.Context, table string) (domain.JournalTableInfo, error) {
	info := domain.JournalTableInfo{TableName: table, Columns: []domain.TableColumn{}}

	rows, err := s.db.QueryContext(ctx, columnsQuery, table)
	if err != nil {
		return info, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var col domain.TableColumn
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable); err != nil {
			return info, fmt.Errorf("failed to scan column of %s: %w", table, err)
		}
		col.IsNullable = nullable == "YES"
		info.Columns = append(info.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return info, fmt.Errorf("error iterating columns of %s: %w", table, err)
	}

	// A table without columns does not exist; skip the count.
	if len(info.Columns) == 0 {
		return info, nil
	}
	info.Exists = true

	// table comes from journalTables, never from the request.
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&info.RowCount); err != nil {
		return info, fmt.Errorf("failed to count rows of %s: %w", table, err)
	}
	return info, nil
}
