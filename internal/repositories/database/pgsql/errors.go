package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SscSPs/journal_posting/internal/apperrors"
)

const (
	uniqueViolation         = "23505"
	integrityViolationClass = "23"
	dataExceptionClass      = "22"
	connectionErrorClass    = "08"
	resourcesErrorClass     = "53"
	operatorInterventionCls = "57"
)

// translateError maps a pgx error raised while touching a row of table onto the
// apperrors taxonomy. name identifies the row for duplicate key reporting.
func translateError(err error, table, name string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation:
			return &apperrors.DuplicateKeyError{Table: table, Name: name, Err: err}
		case strings.HasPrefix(pgErr.Code, integrityViolationClass),
			strings.HasPrefix(pgErr.Code, dataExceptionClass):
			return fmt.Errorf("%w: %s on %s: %w", apperrors.ErrConstraintViolation, pgErr.ConstraintName, table, err)
		case strings.HasPrefix(pgErr.Code, connectionErrorClass),
			strings.HasPrefix(pgErr.Code, resourcesErrorClass),
			strings.HasPrefix(pgErr.Code, operatorInterventionCls):
			return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
		}
		return err
	}

	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	return err
}

// translateConnError is used where no server side error is expected, such as Begin and
// Commit. Anything that is not a caller cancellation means the store could not be reached.
func translateConnError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return translateError(err, "", "")
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
