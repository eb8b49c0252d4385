package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	insertLineSQL = `
		INSERT INTO journal_entry_account (
			name, account, debit, credit, idx, parent, parent_schema_name, parent_fieldname
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	insertLedgerEntrySQL = `
		INSERT INTO accounting_ledger_entry (
			name, date, party, account, debit, credit, reference_type, reference_name,
			reverted, reverts, created, created_by, modified, modified_by
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
)

type SQLiteJournalEntryRepository struct {
	BaseRepository
}

// newSQLiteJournalEntryRepository creates a new repository for journal entries, their lines and ledger postings.
func newSQLiteJournalEntryRepository(db *sql.DB) portsrepo.JournalEntryRepositoryWithTx {
	return &SQLiteJournalEntryRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure SQLiteJournalEntryRepository implements portsrepo.JournalEntryRepositoryWithTx
var _ portsrepo.JournalEntryRepositoryWithTx = (*SQLiteJournalEntryRepository)(nil)

// Begin starts the transaction one commit unit is written through.
func (r *SQLiteJournalEntryRepository) Begin(ctx context.Context) (portsrepo.JournalEntryTx, error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &sqliteJournalEntryTx{tx: tx}, nil
}

// FindJournalEntryByName retrieves a committed journal entry header by name.
func (r *SQLiteJournalEntryRepository) FindJournalEntryByName(ctx context.Context, name string) (*domain.JournalEntry, error) {
	query := `
		SELECT name, number_series, entry_type, date, reference_number, user_remark,
		       submitted, cancelled, created, created_by, modified, modified_by
		FROM journal_entry
		WHERE name = ?;
	`
	var (
		m                       models.JournalEntry
		date, created, modified string
	)
	err := r.DB.QueryRowContext(ctx, query, name).Scan(
		&m.Name,
		&m.NumberSeries,
		&m.EntryType,
		&date,
		&m.ReferenceNumber,
		&m.UserRemark,
		&m.Submitted,
		&m.Cancelled,
		&created,
		&m.CreatedBy,
		&modified,
		&m.ModifiedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", name, translateError(err, journalEntryTable, name))
	}

	if m.Date, err = parseTime(date); err != nil {
		return nil, err
	}
	if m.Created, err = parseTime(created); err != nil {
		return nil, err
	}
	if m.Modified, err = parseTime(modified); err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLinesByParent retrieves the account lines of an entry ordered by idx.
func (r *SQLiteJournalEntryRepository) FindLinesByParent(ctx context.Context, parent string) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT name, account, debit, credit, idx, parent, parent_schema_name, parent_fieldname
		FROM journal_entry_account
		WHERE parent = ?
		ORDER BY idx ASC;
	`
	rows, err := r.DB.QueryContext(ctx, query, parent)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for journal entry %s: %w", parent, translateError(err, lineTable, ""))
	}
	defer rows.Close()

	modelLines := []models.JournalEntryAccount{}
	for rows.Next() {
		var m models.JournalEntryAccount
		if err := rows.Scan(
			&m.Name,
			&m.Account,
			&m.Debit,
			&m.Credit,
			&m.Idx,
			&m.Parent,
			&m.ParentSchemaName,
			&m.ParentFieldname,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line for journal entry %s: %w", parent, err)
		}
		modelLines = append(modelLines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lines for journal entry %s: %w", parent, translateError(err, lineTable, ""))
	}
	return mapping.ToDomainJournalEntryLineSlice(modelLines), nil
}

// FindLedgerEntriesByReference retrieves the ledger postings derived from an entry.
// Names share the entry prefix and end in the line position, so ordering by length
// then name yields posting order.
func (r *SQLiteJournalEntryRepository) FindLedgerEntriesByReference(ctx context.Context, referenceName string) ([]domain.AccountingLedgerEntry, error) {
	query := `
		SELECT name, date, party, account, debit, credit, reference_type, reference_name,
		       reverted, reverts, created, created_by, modified, modified_by
		FROM accounting_ledger_entry
		WHERE reference_type = ? AND reference_name = ?
		ORDER BY length(name) ASC, name ASC;
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.JournalEntrySchema, referenceName)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for journal entry %s: %w", referenceName, translateError(err, ledgerEntryTable, ""))
	}
	defer rows.Close()

	modelEntries := []models.AccountingLedgerEntry{}
	for rows.Next() {
		var (
			m                       models.AccountingLedgerEntry
			date, created, modified string
		)
		if err := rows.Scan(
			&m.Name,
			&date,
			&m.Party,
			&m.Account,
			&m.Debit,
			&m.Credit,
			&m.ReferenceType,
			&m.ReferenceName,
			&m.Reverted,
			&m.Reverts,
			&created,
			&m.CreatedBy,
			&modified,
			&m.ModifiedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry for journal entry %s: %w", referenceName, err)
		}
		if m.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		if m.Created, err = parseTime(created); err != nil {
			return nil, err
		}
		if m.Modified, err = parseTime(modified); err != nil {
			return nil, err
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries for journal entry %s: %w", referenceName, translateError(err, ledgerEntryTable, ""))
	}
	return mapping.ToDomainLedgerEntrySlice(modelEntries), nil
}

// sqliteJournalEntryTx writes one commit unit inside a SQLite transaction.
type sqliteJournalEntryTx struct {
	tx *sql.Tx
}

var _ portsrepo.JournalEntryTx = (*sqliteJournalEntryTx)(nil)

func (t *sqliteJournalEntryTx) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	_, err := t.tx.ExecContext(ctx, insertJournalEntrySQL,
		m.Name,
		m.NumberSeries,
		m.EntryType,
		formatTime(m.Date),
		m.ReferenceNumber,
		m.UserRemark,
		m.Submitted,
		m.Cancelled,
		formatTime(m.Created),
		m.CreatedBy,
		formatTime(m.Modified),
		m.ModifiedBy,
	)
	if err != nil {
		return translateError(err, journalEntryTable, m.Name)
	}
	return nil
}

func (t *sqliteJournalEntryTx) InsertJournalEntryLines(ctx context.Context, lines []domain.JournalEntryLine) error {
	if len(lines) == 0 {
		return nil
	}
	stmt, err := t.tx.PrepareContext(ctx, insertLineSQL)
	if err != nil {
		return translateError(err, lineTable, "")
	}
	defer stmt.Close()

	for _, line := range lines {
		m := mapping.ToModelJournalEntryAccount(line)
		if _, err := stmt.ExecContext(ctx,
			m.Name,
			m.Account,
			m.Debit.String(),
			m.Credit.String(),
			m.Idx,
			m.Parent,
			m.ParentSchemaName,
			m.ParentFieldname,
		); err != nil {
			return translateError(err, lineTable, m.Name)
		}
	}
	return nil
}

func (t *sqliteJournalEntryTx) InsertLedgerEntries(ctx context.Context, entries []domain.AccountingLedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	stmt, err := t.tx.PrepareContext(ctx, insertLedgerEntrySQL)
	if err != nil {
		return translateError(err, ledgerEntryTable, "")
	}
	defer stmt.Close()

	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)
		if _, err := stmt.ExecContext(ctx,
			m.Name,
			formatTime(m.Date),
			m.Party,
			m.Account,
			m.Debit.String(),
			m.Credit.String(),
			m.ReferenceType,
			m.ReferenceName,
			m.Reverted,
			m.Reverts,
			formatTime(m.Created),
			m.CreatedBy,
			formatTime(m.Modified),
			m.ModifiedBy,
		); err != nil {
			return translateError(err, ledgerEntryTable, m.Name)
		}
	}
	return nil
}

func (t *sqliteJournalEntryTx) Commit(_ context.Context) error {
	return commit(t.tx)
}

func (t *sqliteJournalEntryTx) Rollback(_ context.Context) error {
	return rollback(t.tx)
}
