package accounting

import (
	"errors"
	"testing"

	"github.com/SscSPs/journal_posting/internal/apperrors"
	"github.com/SscSPs/journal_posting/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(account string, debit, credit string) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		Account: account,
		Debit:   decimal.RequireFromString(debit),
		Credit:  decimal.RequireFromString(credit),
	}
}

func TestValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalEntryLine
		wantErr error
	}{
		{
			name:  "balanced two lines",
			lines: []domain.JournalEntryLine{line("Cash", "100", "0"), line("Revenue", "0", "100")},
		},
		{
			name: "balanced split credit",
			lines: []domain.JournalEntryLine{
				line("Cash", "100.50", "0"),
				line("Revenue", "0", "100"),
				line("Tax", "0", "0.50"),
			},
		},
		{
			name:  "single line with both sides equal",
			lines: []domain.JournalEntryLine{line("Suspense", "10", "10")},
		},
		{
			name:  "all zero lines balance",
			lines: []domain.JournalEntryLine{line("Cash", "0", "0")},
		},
		{
			name:    "no lines",
			lines:   nil,
			wantErr: apperrors.ErrEmptyEntry,
		},
		{
			name:    "negative debit",
			lines:   []domain.JournalEntryLine{line("Cash", "-100", "0"), line("Revenue", "0", "-100")},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "negative credit is checked before balance",
			lines:   []domain.JournalEntryLine{line("Cash", "100", "0"), line("Revenue", "0", "-5")},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "unbalanced",
			lines:   []domain.JournalEntryLine{line("Cash", "100", "0"), line("Revenue", "0", "50")},
			wantErr: apperrors.ErrUnbalancedEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLines(tt.lines)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestValidateLines_UnbalancedCarriesDiff(t *testing.T) {
	err := ValidateLines([]domain.JournalEntryLine{line("Cash", "100", "0"), line("Revenue", "0", "50")})

	var unbalanced *apperrors.UnbalancedEntryError
	require.True(t, errors.As(err, &unbalanced))
	assert.True(t, unbalanced.Diff.Equal(decimal.NewFromInt(50)), "diff should be 50, got %s", unbalanced.Diff)
	assert.True(t, unbalanced.Debits.Equal(decimal.NewFromInt(100)))
	assert.True(t, unbalanced.Credits.Equal(decimal.NewFromInt(50)))
}

func TestValidateLines_InvalidAmountReportsLine(t *testing.T) {
	err := ValidateLines([]domain.JournalEntryLine{line("Cash", "100", "0"), line("Revenue", "0", "-100")})

	var invalid *apperrors.InvalidAmountError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 2, invalid.Idx)
	assert.Equal(t, "Revenue", invalid.Account)
}

func TestTotals(t *testing.T) {
	debits, credits := Totals([]domain.JournalEntryLine{
		line("Cash", "0.10", "0"),
		line("Cash", "0.20", "0"),
		line("Revenue", "0", "0.30"),
	})
	assert.Equal(t, "0.3", debits.String())
	assert.True(t, debits.Equal(credits))
}
