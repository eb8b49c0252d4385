package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/journal_posting/internal/apperrors"
	"github.com/SscSPs/journal_posting/internal/core/domain"
	"github.com/SscSPs/journal_posting/internal/core/identifier"
	portsrepo "github.com/SscSPs/journal_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_posting/internal/core/ports/services"
	"github.com/SscSPs/journal_posting/internal/platform/metrics"
	"github.com/SscSPs/journal_posting/internal/utils/accounting"
)

var (
	ErrActorMissing       = errors.New("actor is required")
	ErrPostingTimeMissing = errors.New("posting time is required")
)

// journalService posts journal entries and reads them back.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalEntryRepositoryWithTx
	ids         *identifier.Generator
}

// NewJournalService creates a new JournalService using one identifier scheme for every posting.
func NewJournalService(journalRepo portsrepo.JournalEntryRepositoryWithTx, ids *identifier.Generator) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		ids:         ids,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostJournalEntry validates the lines, then writes header, lines and ledger postings as one
// commit unit. Nothing is written when validation fails, and nothing stays written when any
// later step fails.
func (s *journalService) PostJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, actor string, now time.Time) (*domain.PostedEntry, error) {
	logger := s.GetLogger(ctx)

	if strings.TrimSpace(actor) == "" {
		metrics.RecordFailure(metrics.OutcomeValidation)
		return nil, apperrors.Validation(ErrActorMissing)
	}
	if now.IsZero() {
		metrics.RecordFailure(metrics.OutcomeValidation)
		return nil, apperrors.Validation(ErrPostingTimeMissing)
	}

	if err := accounting.ValidateLines(lines); err != nil {
		logger.Warn("Journal entry rejected by balance validation", slog.String("journal_entry", entry.Name), slog.String("error", err.Error()))
		metrics.RecordFailure(metrics.OutcomeValidation)
		return nil, err
	}

	unit, err := s.buildCommitUnit(entry, lines, actor, now)
	if err != nil {
		metrics.RecordFailure(metrics.OutcomeError)
		return nil, err
	}

	if err := s.writeCommitUnit(ctx, unit); err != nil {
		metrics.RecordFailure(outcomeOf(err))
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Journal entry rejected by the store", slog.String("journal_entry", unit.Entry.Name), slog.String("error", err.Error()))
		} else {
			logger.Error("Failed to post journal entry", slog.String("journal_entry", unit.Entry.Name), slog.String("error", err.Error()))
		}
		return nil, err
	}

	metrics.RecordPosted(len(unit.Lines), len(unit.LedgerEntries))
	debits, _ := accounting.Totals(unit.Lines)
	s.LogInfo(ctx, "Journal entry posted successfully",
		slog.String("journal_entry", unit.Entry.Name),
		slog.Int("line_count", len(unit.Lines)),
		slog.String("total", debits.String()),
		slog.String("actor", actor),
		slog.String("scheme", string(s.ids.Scheme())),
	)
	return unit.Result(), nil
}

// buildCommitUnit names every row and derives the ledger postings from the lines.
func (s *journalService) buildCommitUnit(entry domain.JournalEntry, lines []domain.JournalEntryLine, actor string, now time.Time) (domain.CommitUnit, error) {
	base, err := identifier.BaseName(entry.Name, entry.NumberSeries)
	if err != nil {
		return domain.CommitUnit{}, err
	}
	name := s.ids.Next(identifier.KindEntry, base, 0, now)
	audit := domain.NewAuditFields(actor, now)

	header := entry
	header.Name = name
	header.Submitted = true
	header.Cancelled = false
	header.AuditFields = audit

	unit := domain.CommitUnit{
		Entry:         header,
		Lines:         make([]domain.JournalEntryLine, len(lines)),
		LedgerEntries: make([]domain.AccountingLedgerEntry, len(lines)),
	}
	for i, line := range lines {
		idx := i + 1
		unit.Lines[i] = domain.JournalEntryLine{
			Name:             s.ids.Next(identifier.KindLine, name, idx, now),
			Account:          line.Account,
			Debit:            line.Debit,
			Credit:           line.Credit,
			Idx:              idx,
			Parent:           name,
			ParentSchemaName: domain.JournalEntrySchema,
			ParentFieldname:  domain.AccountsFieldname,
			Party:            line.Party,
		}
		unit.LedgerEntries[i] = domain.AccountingLedgerEntry{
			Name:          s.ids.Next(identifier.KindLedger, name, idx, now),
			Date:          now,
			Party:         line.Party,
			Account:       line.Account,
			Debit:         line.Debit,
			Credit:        line.Credit,
			ReferenceType: domain.JournalEntrySchema,
			ReferenceName: name,
			Reverted:      false,
			Reverts:       "",
			AuditFields:   audit,
		}
	}
	return unit, nil
}

// writeCommitUnit is the only place rows are written. Every failure after Begin rolls back
// the whole unit. Cancellation of ctx is honoured up to the commit request; commit and
// rollback themselves run to completion.
func (s *journalService) writeCommitUnit(ctx context.Context, unit domain.CommitUnit) error {
	start := time.Now()
	defer func() { metrics.PostingDuration.Observe(time.Since(start).Seconds()) }()

	name := unit.Entry.Name
	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for journal entry %s: %w", name, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back posting transaction", slog.String("journal_entry", name))
			return
		}
		s.LogDebug(ctx, "Posting transaction rolled back", slog.String("journal_entry", name))
	}()

	if err := tx.InsertJournalEntry(ctx, unit.Entry); err != nil {
		return s.headerError(name, err)
	}
	if err := tx.InsertJournalEntryLines(ctx, unit.Lines); err != nil {
		return childError("journal entry lines", name, err)
	}
	if err := tx.InsertLedgerEntries(ctx, unit.LedgerEntries); err != nil {
		return childError("ledger entries", name, err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("posting of journal entry %s cancelled before commit: %w", name, err)
	}
	if err := tx.Commit(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("failed to commit journal entry %s: %w", name, err)
	}
	committed = true
	return nil
}

// headerError turns a key collision on the header into the error of the active scheme.
func (s *journalService) headerError(name string, err error) error {
	var dup *apperrors.DuplicateKeyError
	if errors.As(err, &dup) {
		if s.ids.RejectsReusedNames() {
			return &apperrors.DuplicateEntryError{Name: name}
		}
		return &apperrors.DuplicateIdentifierError{Name: name}
	}
	return fmt.Errorf("failed to insert journal entry %s: %w", name, err)
}

func childError(what, name string, err error) error {
	var dup *apperrors.DuplicateKeyError
	if errors.As(err, &dup) {
		return &apperrors.DuplicateIdentifierError{Name: dup.Name}
	}
	return fmt.Errorf("failed to insert %s for journal entry %s: %w", what, name, err)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, apperrors.ErrDuplicate):
		return metrics.OutcomeDuplicate
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return metrics.OutcomeStoreUnavailable
	case errors.Is(err, apperrors.ErrConstraintViolation):
		return metrics.OutcomeConstraint
	default:
		return metrics.OutcomeError
	}
}

// GetJournalEntry retrieves a posted entry with its lines and ledger postings.
func (s *journalService) GetJournalEntry(ctx context.Context, name string) (*domain.JournalEntryAggregate, error) {
	logger := s.GetLogger(ctx)

	entry, err := s.journalRepo.FindJournalEntryByName(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry", slog.String("journal_entry", name), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", name, err)
	}

	lines, err := s.journalRepo.FindLinesByParent(ctx, name)
	if err != nil {
		logger.Error("Failed to fetch lines for journal entry", slog.String("journal_entry", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve lines for journal entry %s: %w", name, err)
	}

	ledgerEntries, err := s.journalRepo.FindLedgerEntriesByReference(ctx, name)
	if err != nil {
		logger.Error("Failed to fetch ledger entries for journal entry", slog.String("journal_entry", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve ledger entries for journal entry %s: %w", name, err)
	}

	logger.Debug("Journal entry retrieved successfully", slog.String("journal_entry", name), slog.Int("line_count", len(lines)))
	return &domain.JournalEntryAggregate{
		Entry:         *entry,
		Lines:         lines,
		LedgerEntries: ledgerEntries,
	}, nil
}
