package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/SscSPs/journal_posting/internal/apperrors"
)

// translateError maps a modernc.org/sqlite error raised while touching a row of table onto
// the apperrors taxonomy. name identifies the row for duplicate key reporting.
func translateError(err error, table, name string) error {
	if err == nil {
		return nil
	}

	var sqliteErr *sqlitedriver.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		switch code & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			if isKeyViolation(code, sqliteErr.Error()) {
				return &apperrors.DuplicateKeyError{Table: table, Name: name, Err: err}
			}
			return fmt.Errorf("%w: %s: %w", apperrors.ErrConstraintViolation, table, err)
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN,
			sqlite3.SQLITE_IOERR, sqlite3.SQLITE_FULL, sqlite3.SQLITE_READONLY:
			return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	return err
}

// translateConnError is used for Begin and Commit. Anything that is not a caller
// cancellation or an integrity failure means the store could not be used.
func translateConnError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	translated := translateError(err, "", "")
	if errors.Is(translated, apperrors.ErrDuplicate) ||
		errors.Is(translated, apperrors.ErrConstraintViolation) ||
		errors.Is(translated, apperrors.ErrStoreUnavailable) {
		return translated
	}
	return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
}

func isKeyViolation(code int, msg string) bool {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// extended codes disabled
		return strings.Contains(msg, "UNIQUE constraint failed")
	}
	return false
}
