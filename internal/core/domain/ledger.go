package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingLedgerEntry is the per-account posting derived from one JournalEntryLine.
type AccountingLedgerEntry struct {
	Name          string          `json:"name"`
	Date          time.Time       `json:"date"`
	Party         string          `json:"party"`
	Account       string          `json:"account"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	ReferenceType string          `json:"referenceType"` // Always JournalEntrySchema
	ReferenceName string          `json:"referenceName"` // JournalEntry.Name
	Reverted      bool            `json:"reverted"`
	Reverts       string          `json:"reverts"` // Name of the reverted ledger entry, empty by default
	AuditFields
}
