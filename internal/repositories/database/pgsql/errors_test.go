package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/journal_posting/internal/apperrors"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantDup bool
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantIs: apperrors.ErrDuplicate, wantDup: true},
		{name: "check violation", err: &pgconn.PgError{Code: "23514", ConstraintName: "journal_entry_account_amounts_check"}, wantIs: apperrors.ErrConstraintViolation},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantIs: apperrors.ErrConstraintViolation},
		{name: "string too long", err: &pgconn.PgError{Code: "22001"}, wantIs: apperrors.ErrConstraintViolation},
		{name: "numeric overflow", err: &pgconn.PgError{Code: "22003"}, wantIs: apperrors.ErrConstraintViolation},
		{name: "connection failure", err: &pgconn.PgError{Code: "08006"}, wantIs: apperrors.ErrStoreUnavailable},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, wantIs: apperrors.ErrStoreUnavailable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, wantIs: apperrors.ErrStoreUnavailable},
		{name: "deadline", err: fmt.Errorf("exec: %w", context.DeadlineExceeded), wantIs: apperrors.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "journal_entry_account", "JE-1_Account_1")
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.wantIs)

			var dup *apperrors.DuplicateKeyError
			assert.Equal(t, tt.wantDup, errors.As(got, &dup))
			if tt.wantDup {
				assert.Equal(t, "JE-1_Account_1", dup.Name)
			}
		})
	}
}

func TestTranslateError_Untouched(t *testing.T) {
	assert.NoError(t, translateError(nil, "journal_entry", "JE-1"))

	plain := errors.New("boom")
	assert.Equal(t, plain, translateError(plain, "journal_entry", "JE-1"))
}

func TestTranslateConnError(t *testing.T) {
	assert.ErrorIs(t, translateConnError(errors.New("dial tcp: refused")), apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, translateConnError(context.Canceled), context.Canceled)
	assert.NotErrorIs(t, translateConnError(context.Canceled), apperrors.ErrStoreUnavailable)
}
