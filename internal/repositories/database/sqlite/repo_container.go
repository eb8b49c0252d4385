package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/journal_posting/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalEntryRepo: newSQLiteJournalEntryRepository(db),
	}
}
