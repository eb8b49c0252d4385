package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/journal_posting/pkg/database"
)

func TestSQLiteDSN(t *testing.T) {
	dsn := database.SQLiteDSN("journal.db")
	assert.Contains(t, dsn, "journal.db?_txlock=immediate")
	assert.Contains(t, dsn, "_pragma=busy_timeout(5000)")
	assert.Contains(t, dsn, "_pragma=foreign_keys(1)")

	withQuery := database.SQLiteDSN("file:journal.db?mode=rwc")
	assert.Contains(t, withQuery, "mode=rwc&_txlock=immediate")
}

func TestMigrateUp_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	applied, err := database.MigrateUp(database.DriverSQLite, path)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = database.MigrateUp(database.DriverSQLite, path)
	require.NoError(t, err)
	assert.False(t, applied, "second run should find nothing to apply")

	db, err := database.OpenSQLite(context.Background(), path, true)
	require.NoError(t, err)
	defer database.CloseSQLite(db)

	for _, table := range []string{"journal_entry", "journal_entry_account", "accounting_ledger_entry"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrateUp_UnsupportedDriver(t *testing.T) {
	_, err := database.MigrateUp("oracle", "whatever")
	assert.Error(t, err)
}

func TestNewPgxPool_EmptyURL(t *testing.T) {
	_, err := database.NewPgxPool(context.Background(), "", false)
	assert.Error(t, err)
}
