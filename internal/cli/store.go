package cli

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/journal_posting/internal/core/ports/repositories"
	"github.com/SscSPs/journal_posting/internal/platform/config"
	"github.com/SscSPs/journal_posting/internal/repositories/database/pgsql"
	"github.com/SscSPs/journal_posting/internal/repositories/database/sqlite"
	"github.com/SscSPs/journal_posting/pkg/database"
)

// migrationTarget returns the driver name and DSN golang-migrate should use.
func migrationTarget(cfg *config.Config) (string, string) {
	if cfg.DatabaseDriver == config.DriverPostgres {
		return database.DriverPostgres, cfg.DatabaseURL
	}
	return database.DriverSQLite, cfg.SQLitePath
}

// openStore runs pending migrations when enabled and opens the configured store.
// The returned func releases the store.
func openStore(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.RunMigrations {
		driver, dsn := migrationTarget(cfg)
		logger.Info("Running database migrations...", slog.String("driver", driver))
		if _, err := database.MigrateUp(driver, dsn); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return sqlite.NewRepositoryProvider(db), func() { database.CloseSQLite(db) }, nil
	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
