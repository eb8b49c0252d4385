package repositories

import (
	"context"

	"github.com/SscSPs/journal_posting/internal/core/domain"
)

// JournalEntryWriter defines the row insert primitives used while posting.
// Implementations report primary key collisions as *apperrors.DuplicateKeyError.
type JournalEntryWriter interface {
	// InsertJournalEntry inserts the entry header row.
	InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// InsertJournalEntryLines inserts the account lines in slice order.
	InsertJournalEntryLines(ctx context.Context, lines []domain.JournalEntryLine) error

	// InsertLedgerEntries inserts the ledger postings in slice order.
	InsertLedgerEntries(ctx context.Context, entries []domain.AccountingLedgerEntry) error
}

// JournalEntryTx is a store transaction through which one commit unit is written.
type JournalEntryTx interface {
	JournalEntryWriter
	Tx
}

// JournalEntryReader defines the row lookup primitives. Readers only see committed rows.
type JournalEntryReader interface {
	// FindJournalEntryByName retrieves an entry header by its name.
	FindJournalEntryByName(ctx context.Context, name string) (*domain.JournalEntry, error)

	// FindLinesByParent retrieves the account lines of an entry ordered by idx.
	FindLinesByParent(ctx context.Context, parent string) ([]domain.JournalEntryLine, error)

	// FindLedgerEntriesByReference retrieves the ledger postings derived from an entry in posting order.
	FindLedgerEntriesByReference(ctx context.Context, referenceName string) ([]domain.AccountingLedgerEntry, error)
}

// JournalEntryRepositoryWithTx combines lookups with transaction support.
type JournalEntryRepositoryWithTx interface {
	JournalEntryReader
	TransactionManager
}
