package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteBusyTimeoutMillis bounds how long a writer waits for the database lock.
const SQLiteBusyTimeoutMillis = 5000

// SQLiteDSN builds the modernc.org/sqlite data source name used for every connection.
// Transactions start with BEGIN IMMEDIATE so concurrent posts serialize on the write lock.
func SQLiteDSN(path string) string {
	params := []string{
		"_txlock=immediate",
		fmt.Sprintf("_pragma=busy_timeout(%d)", SQLiteBusyTimeoutMillis),
		"_pragma=foreign_keys(1)",
		"_pragma=journal_mode(WAL)",
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(params, "&")
}

// OpenSQLite opens a SQLite database file.
// When checkConnection is set the database is pinged before it is returned.
func OpenSQLite(ctx context.Context, path string, checkConnection bool) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if checkConnection {
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
		}
		slog.Info("Successfully opened SQLite database.", slog.String("path", path))
	}

	return db, nil
}

// CloseSQLite closes the SQLite database handle.
func CloseSQLite(db *sql.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close SQLite database", slog.String("error", err.Error()))
			return
		}
		slog.Info("SQLite database closed.")
	}
}
