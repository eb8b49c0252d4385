package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// JournalEntrySchema is the schema name recorded on child rows of a journal entry.
	JournalEntrySchema = "JournalEntry"
	// AccountsFieldname is the parent field holding the account lines.
	AccountsFieldname = "accounts"
)

// JournalEntry is the header of a single dated accounting transaction.
// Name is the primary key and never changes after commit.
type JournalEntry struct {
	Name            string    `json:"name"`
	NumberSeries    string    `json:"numberSeries"`
	EntryType       string    `json:"entryType"`
	Date            time.Time `json:"date"`
	ReferenceNumber string    `json:"referenceNumber"`
	UserRemark      string    `json:"userRemark"`
	Submitted       bool      `json:"submitted"`
	Cancelled       bool      `json:"cancelled"`
	AuditFields
}

// JournalEntryLine is one debit/credit line of a JournalEntry.
type JournalEntryLine struct {
	Name             string          `json:"name"`
	Account          string          `json:"account"` // Reference into the chart of accounts, not validated here
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	Idx              int             `json:"idx"`    // 1-based position within the parent
	Parent           string          `json:"parent"` // JournalEntry.Name
	ParentSchemaName string          `json:"parentSchemaName"`
	ParentFieldname  string          `json:"parentFieldname"`
	// Party is the optional counterparty supplied with the line. It is carried over to the
	// ledger posting and is not a column of the line table.
	Party string `json:"party,omitempty"`
}

// JournalEntryAggregate is a posted entry read back from the store with all of its rows.
type JournalEntryAggregate struct {
	Entry         JournalEntry            `json:"entry"`
	Lines         []JournalEntryLine      `json:"lines"`
	LedgerEntries []AccountingLedgerEntry `json:"ledgerEntries"`
}
