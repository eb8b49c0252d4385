package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/SscSPs/journal_posting/migrations"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// MigrateUp applies every pending embedded migration for the given driver.
// It opens its own connection, which golang-migrate closes when done.
// It reports whether any migration was applied.
func MigrateUp(driver, dsn string) (bool, error) {
	db, err := openForMigrations(driver, dsn)
	if err != nil {
		return false, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return false, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	var dbDriver migratedb.Driver
	switch driver {
	case DriverPostgres:
		dbDriver, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverSQLite:
		dbDriver, err = sqlite.WithInstance(db, &sqlite.Config{})
	}
	if err != nil {
		_ = db.Close()
		return false, fmt.Errorf("could not create %s driver instance for migrations: %w", driver, err)
	}

	src, err := iofs.New(migrations.FS, driver)
	if err != nil {
		_ = dbDriver.Close()
		return false, fmt.Errorf("could not open embedded migrations for %s: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		_ = src.Close()
		_ = dbDriver.Close()
		return false, fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()

	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return false, fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return false, fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return false, fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply.", slog.String("driver", driver))
		return false, nil
	}
	slog.Info("Database migrations applied successfully.", slog.String("driver", driver))
	return true, nil
}

func openForMigrations(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
		// pgx/v5/stdlib keeps migrations on the same driver as the main pool
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
		}
		return db, nil
	case DriverSQLite:
		db, err := sql.Open("sqlite", SQLiteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
