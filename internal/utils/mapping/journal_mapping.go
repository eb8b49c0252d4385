package mapping

import (
	"github.com/SscSPs/journal_posting/internal/core/domain"
	"github.com/SscSPs/journal_posting/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		Name:            d.Name,
		NumberSeries:    d.NumberSeries,
		EntryType:       d.EntryType,
		Date:            d.Date,
		ReferenceNumber: d.ReferenceNumber,
		UserRemark:      d.UserRemark,
		Submitted:       d.Submitted,
		Cancelled:       d.Cancelled,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		Name:            m.Name,
		NumberSeries:    m.NumberSeries,
		EntryType:       m.EntryType,
		Date:            m.Date,
		ReferenceNumber: m.ReferenceNumber,
		UserRemark:      m.UserRemark,
		Submitted:       m.Submitted,
		Cancelled:       m.Cancelled,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryAccount converts a domain JournalEntryLine to its table row.
// Party is not a line column and is dropped here.
func ToModelJournalEntryAccount(d domain.JournalEntryLine) models.JournalEntryAccount {
	return models.JournalEntryAccount{
		Name:             d.Name,
		Account:          d.Account,
		Debit:            d.Debit,
		Credit:           d.Credit,
		Idx:              d.Idx,
		Parent:           d.Parent,
		ParentSchemaName: d.ParentSchemaName,
		ParentFieldname:  d.ParentFieldname,
	}
}

// ToDomainJournalEntryLine converts a journal_entry_account row to a domain JournalEntryLine
func ToDomainJournalEntryLine(m models.JournalEntryAccount) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		Name:             m.Name,
		Account:          m.Account,
		Debit:            m.Debit,
		Credit:           m.Credit,
		Idx:              m.Idx,
		Parent:           m.Parent,
		ParentSchemaName: m.ParentSchemaName,
		ParentFieldname:  m.ParentFieldname,
	}
}

// ToDomainJournalEntryLineSlice converts a slice of rows to a slice of domain lines
func ToDomainJournalEntryLineSlice(ms []models.JournalEntryAccount) []domain.JournalEntryLine {
	ds := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryLine(m)
	}
	return ds
}

// ToModelLedgerEntry converts a domain AccountingLedgerEntry to a model AccountingLedgerEntry
func ToModelLedgerEntry(d domain.AccountingLedgerEntry) models.AccountingLedgerEntry {
	return models.AccountingLedgerEntry{
		Name:          d.Name,
		Date:          d.Date,
		Party:         d.Party,
		Account:       d.Account,
		Debit:         d.Debit,
		Credit:        d.Credit,
		ReferenceType: d.ReferenceType,
		ReferenceName: d.ReferenceName,
		Reverted:      d.Reverted,
		Reverts:       d.Reverts,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model AccountingLedgerEntry to a domain AccountingLedgerEntry
func ToDomainLedgerEntry(m models.AccountingLedgerEntry) domain.AccountingLedgerEntry {
	return domain.AccountingLedgerEntry{
		Name:          m.Name,
		Date:          m.Date,
		Party:         m.Party,
		Account:       m.Account,
		Debit:         m.Debit,
		Credit:        m.Credit,
		ReferenceType: m.ReferenceType,
		ReferenceName: m.ReferenceName,
		Reverted:      m.Reverted,
		Reverts:       m.Reverts,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of rows to a slice of domain ledger entries
func ToDomainLedgerEntrySlice(ms []models.AccountingLedgerEntry) []domain.AccountingLedgerEntry {
	ds := make([]domain.AccountingLedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
