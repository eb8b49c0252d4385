package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingLedgerEntry is a row of the accounting_ledger_entry table.
type AccountingLedgerEntry struct {
	Name          string          `db:"name"`
	Date          time.Time       `db:"date"`
	Party         string          `db:"party"`
	Account       string          `db:"account"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	ReferenceType string          `db:"reference_type"`
	ReferenceName string          `db:"reference_name"`
	Reverted      bool            `db:"reverted"`
	Reverts       string          `db:"reverts"`
	AuditFields
}
