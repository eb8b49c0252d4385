package loader_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/journal_posting/internal/apperrors"
	"github.com/SscSPs/journal_posting/internal/loader"
)

func TestLoadFile(t *testing.T) {
	req, err := loader.LoadFile(filepath.Join("testdata", "journal_entry.json"))
	require.NoError(t, err)

	assert.Equal(t, "JE-0001", req.Name)
	assert.Equal(t, "2024-01-15", req.Date)
	require.Len(t, req.Accounts, 2)
	assert.Equal(t, "Customer A", req.Accounts[0].Party)
	assert.True(t, decimal.NewFromInt(100).Equal(req.Accounts[0].Debit))
	assert.True(t, decimal.NewFromInt(100).Equal(req.Accounts[1].Credit))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "malformed json",
			doc:     `{"name": `,
			wantMsg: "malformed JSON",
		},
		{
			name:    "missing entry type",
			doc:     `{"date": "2024-01-15", "accounts": []}`,
			wantMsg: "'entryType' is required",
		},
		{
			name:    "bad date",
			doc:     `{"entryType": "Journal Entry", "date": "15/01/2024", "accounts": []}`,
			wantMsg: "'date' must be YYYY-MM-DD or RFC 3339",
		},
		{
			name:    "missing accounts",
			doc:     `{"entryType": "Journal Entry", "date": "2024-01-15"}`,
			wantMsg: "'accounts' is required",
		},
		{
			name:    "line without account",
			doc:     `{"entryType": "Journal Entry", "date": "2024-01-15", "accounts": [{"debit": 1}]}`,
			wantMsg: "'accounts[0].account' is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecode_EmptyAccountsPassThrough(t *testing.T) {
	req, err := loader.Decode(strings.NewReader(`{"entryType": "Journal Entry", "date": "2024-01-15", "accounts": []}`))
	require.NoError(t, err)
	assert.NotNil(t, req.Accounts)
	assert.Empty(t, req.Accounts)
}
