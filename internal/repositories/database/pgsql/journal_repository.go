package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/journal_posting/internal/apperrors"
	"github.com/SscSPs/journal_posting/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_posting/internal/core/ports/repositories"
	"github.com/SscSPs/journal_posting/internal/models"
	"github.com/SscSPs/journal_posting/internal/utils/mapping"
)

const (
	journalEntryTable = "journal_entry"
	lineTable         = "journal_entry_account"
	ledgerEntryTable  = "accounting_ledger_entry"
)

const (
	insertJournalEntrySQL = `
		INSERT INTO journal_entry (
			name, number_series, entry_type, date, reference_number, user_remark,
			submitted, cancelled, created, created_by, modified, modified_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	insertLineSQL = `
		INSERT INTO journal_entry_account (
			name, account, debit, credit, idx, parent, parent_schema_name, parent_fieldname
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	insertLedgerEntrySQL = `
		INSERT INTO accounting_ledger_entry (
			name, date, party, account, debit, credit, reference_type, reference_name,
			reverted, reverts, created, created_by, modified, modified_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
)

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries, their lines and ledger postings.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryWithTx {
	return &PgxJournalEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalEntryRepository implements portsrepo.JournalEntryRepositoryWithTx
var _ portsrepo.JournalEntryRepositoryWithTx = (*PgxJournalEntryRepository)(nil)

// Begin starts the transaction one commit unit is written through.
func (r *PgxJournalEntryRepository) Begin(ctx context.Context) (portsrepo.JournalEntryTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &pgxJournalEntryTx{tx: tx}, nil
}

// FindJournalEntryByName retrieves a committed journal entry header by name.
func (r *PgxJournalEntryRepository) FindJournalEntryByName(ctx context.Context, name string) (*domain.JournalEntry, error) {
	query := `
		SELECT name, number_series, entry_type, date, reference_number, user_remark,
		       submitted, cancelled, created, created_by, modified, modified_by
		FROM journal_entry
		WHERE name = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&m.Name,
		&m.NumberSeries,
		&m.EntryType,
		&m.Date,
		&m.ReferenceNumber,
		&m.UserRemark,
		&m.Submitted,
		&m.Cancelled,
		&m.Created,
		&m.CreatedBy,
		&m.Modified,
		&m.ModifiedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", name, translateError(err, journalEntryTable, name))
	}

	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLinesByParent retrieves the account lines of an entry ordered by idx.
func (r *PgxJournalEntryRepository) FindLinesByParent(ctx context.Context, parent string) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT name, account, debit, credit, idx, parent, parent_schema_name, parent_fieldname
		FROM journal_entry_account
		WHERE parent = $1
		ORDER BY idx ASC;
	`
	rows, err := r.Pool.Query(ctx, query, parent)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for journal entry %s: %w", parent, translateError(err, lineTable, ""))
	}

	modelLines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntryAccount])
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines for journal entry %s: %w", parent, err)
	}
	return mapping.ToDomainJournalEntryLineSlice(modelLines), nil
}

// FindLedgerEntriesByReference retrieves the ledger postings derived from an entry.
// Names share the entry prefix and end in the line position, so ordering by length
// then name yields posting order.
func (r *PgxJournalEntryRepository) FindLedgerEntriesByReference(ctx context.Context, referenceName string) ([]domain.AccountingLedgerEntry, error) {
	query := `
		SELECT name, date, party, account, debit, credit, reference_type, reference_name,
		       reverted, reverts, created, created_by, modified, modified_by
		FROM accounting_ledger_entry
		WHERE reference_type = $1 AND reference_name = $2
		ORDER BY length(name) ASC, name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, domain.JournalEntrySchema, referenceName)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for journal entry %s: %w", referenceName, translateError(err, ledgerEntryTable, ""))
	}

	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccountingLedgerEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries for journal entry %s: %w", referenceName, err)
	}
	return mapping.ToDomainLedgerEntrySlice(modelEntries), nil
}

// pgxJournalEntryTx writes one commit unit inside a pgx transaction.
type pgxJournalEntryTx struct {
	tx pgx.Tx
}

var _ portsrepo.JournalEntryTx = (*pgxJournalEntryTx)(nil)

func (t *pgxJournalEntryTx) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	_, err := t.tx.Exec(ctx, insertJournalEntrySQL,
		m.Name,
		m.NumberSeries,
		m.EntryType,
		m.Date,
		m.ReferenceNumber,
		m.UserRemark,
		m.Submitted,
		m.Cancelled,
		m.Created,
		m.CreatedBy,
		m.Modified,
		m.ModifiedBy,
	)
	if err != nil {
		return translateError(err, journalEntryTable, m.Name)
	}
	return nil
}

func (t *pgxJournalEntryTx) InsertJournalEntryLines(ctx context.Context, lines []domain.JournalEntryLine) error {
	batch := &pgx.Batch{}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		m := mapping.ToModelJournalEntryAccount(line)
		batch.Queue(insertLineSQL,
			m.Name,
			m.Account,
			m.Debit,
			m.Credit,
			m.Idx,
			m.Parent,
			m.ParentSchemaName,
			m.ParentFieldname,
		)
		names = append(names, m.Name)
	}
	return t.sendBatch(ctx, batch, lineTable, names)
}

func (t *pgxJournalEntryTx) InsertLedgerEntries(ctx context.Context, entries []domain.AccountingLedgerEntry) error {
	batch := &pgx.Batch{}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)
		batch.Queue(insertLedgerEntrySQL,
			m.Name,
			m.Date,
			m.Party,
			m.Account,
			m.Debit,
			m.Credit,
			m.ReferenceType,
			m.ReferenceName,
			m.Reverted,
			m.Reverts,
			m.Created,
			m.CreatedBy,
			m.Modified,
			m.ModifiedBy,
		)
		names = append(names, m.Name)
	}
	return t.sendBatch(ctx, batch, ledgerEntryTable, names)
}

// sendBatch sends the queued inserts and reads their results in order, so the first
// failing row is the one reported.
func (t *pgxJournalEntryTx) sendBatch(ctx context.Context, batch *pgx.Batch, table string, names []string) error {
	if batch.Len() == 0 {
		return nil
	}

	br := t.tx.SendBatch(ctx, batch)
	for _, name := range names {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return translateError(err, table, name)
		}
	}
	if err := br.Close(); err != nil {
		return translateError(err, table, "")
	}
	return nil
}

func (t *pgxJournalEntryTx) Commit(ctx context.Context) error {
	return commit(ctx, t.tx)
}

func (t *pgxJournalEntryTx) Rollback(ctx context.Context) error {
	return rollback(ctx, t.tx)
}
