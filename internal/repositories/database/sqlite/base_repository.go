package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// timeLayout is how timestamps are stored in TEXT columns.
const timeLayout = time.RFC3339Nano

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

// begin starts a new database transaction. The DSN makes it BEGIN IMMEDIATE, so the
// write lock is taken here and concurrent posts queue behind it.
// The transaction is detached from ctx cancellation; statements run inside it still
// observe ctx.
func (r *BaseRepository) begin(ctx context.Context) (*sql.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	tx, err := r.DB.BeginTx(context.WithoutCancel(ctx), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", translateConnError(err))
	}
	return tx, nil
}

// commit commits a transaction
func commit(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", translateConnError(err))
	}
	return nil
}

// rollback rolls back a transaction. A transaction that is already done is not an error.
func rollback(tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to rollback transaction: %w", translateConnError(err))
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", s, err)
	}
	return t, nil
}
