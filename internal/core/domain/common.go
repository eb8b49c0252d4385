package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy/ModifiedBy carry the opaque actor string supplied by the caller.
type AuditFields struct {
	Created    time.Time `json:"created"`
	CreatedBy  string    `json:"createdBy"`
	Modified   time.Time `json:"modified"`
	ModifiedBy string    `json:"modifiedBy"`
}

// NewAuditFields stamps both the creation and modification fields with the same actor and time.
func NewAuditFields(actor string, now time.Time) AuditFields {
	return AuditFields{
		Created:    now,
		CreatedBy:  actor,
		Modified:   now,
		ModifiedBy: actor,
	}
}
