package services

import (
	"context"
	"time"

	"github.com/SscSPs/journal_posting/internal/core/domain"
)

// JournalPosterSvc defines the posting operation.
type JournalPosterSvc interface {
	// PostJournalEntry validates the lines and writes the entry header, its lines and the
	// derived ledger postings as one commit unit. actor and now stamp the audit fields.
	PostJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, actor string, now time.Time) (*domain.PostedEntry, error)
}

// JournalReaderSvc defines read operations for posted entries.
type JournalReaderSvc interface {
	// GetJournalEntry retrieves a posted entry with its lines and ledger postings.
	GetJournalEntry(ctx context.Context, name string) (*domain.JournalEntryAggregate, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalPosterSvc
	JournalReaderSvc
}
