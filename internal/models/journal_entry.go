package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entry table.
type JournalEntry struct {
	Name            string    `db:"name"`
	NumberSeries    string    `db:"number_series"`
	EntryType       string    `db:"entry_type"`
	Date            time.Time `db:"date"`
	ReferenceNumber string    `db:"reference_number"`
	UserRemark      string    `db:"user_remark"`
	Submitted       bool      `db:"submitted"`
	Cancelled       bool      `db:"cancelled"`
	AuditFields
}

// JournalEntryAccount is a row of the journal_entry_account table.
type JournalEntryAccount struct {
	Name             string          `db:"name"`
	Account          string          `db:"account"`
	Debit            decimal.Decimal `db:"debit"`
	Credit           decimal.Decimal `db:"credit"`
	Idx              int             `db:"idx"`
	Parent           string          `db:"parent"`
	ParentSchemaName string          `db:"parent_schema_name"`
	ParentFieldname  string          `db:"parent_fieldname"`
}
