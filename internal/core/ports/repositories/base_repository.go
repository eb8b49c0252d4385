package repositories

import (
	"context"
)

// TransactionManager starts store transactions.
type TransactionManager interface {
	// Begin starts a new store transaction covering one commit unit.
	Begin(ctx context.Context) (JournalEntryTx, error)
}

// Tx is the commit/rollback half of a store transaction.
type Tx interface {
	// Commit makes every row written through the transaction visible to readers.
	Commit(ctx context.Context) error

	// Rollback discards every row written through the transaction.
	// Calling Rollback after Commit is a no-op.
	Rollback(ctx context.Context) error
}
