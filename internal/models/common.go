package models

import "time"

// AuditFields are the audit columns shared by every journal table.
type AuditFields struct {
	Created    time.Time `db:"created"`
	CreatedBy  string    `db:"created_by"`
	Modified   time.Time `db:"modified"`
	ModifiedBy string    `db:"modified_by"`
}
