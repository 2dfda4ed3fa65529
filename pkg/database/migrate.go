package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// OpenStdDB opens a database/sql handle over the pgx stdlib driver. It backs
// golang-migrate and the schema inspector.
func OpenStdDB(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database/sql connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// RunMigrations applies every pending "up" migration found at migrationsPath
// (e.g. "file://migrations") over a dedicated connection that is closed on return.
// It reports whether anything was applied.
func RunMigrations(databaseURL string, migrationsPath string, logger *slog.Logger) (applied bool, err error) {
	db, err := OpenStdDB(databaseURL)
	if err != nil {
		return false, err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		_ = db.Close()
		return false, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return false, fmt.Errorf("could not create migrate instance: %w", err)
	}
	// Closing the migrate instance also closes db.
	defer func() {
		sourceErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(sourceErr, dbErr)
		}
	}()

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return false, fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return false, fmt.Errorf("failed to read migration version: %w", verr)
	}
	if dirty {
		return false, fmt.Errorf("database is in a dirty migration state at version %d", version)
	}

	applied = !errors.Is(upErr, migrate.ErrNoChange)
	if applied {
		logger.Info("Database migrations applied successfully.", slog.Uint64("version", uint64(version)))
	} else {
		logger.Info("No new migrations to apply.", slog.Uint64("version", uint64(version)))
	}
	return applied, nil
}
