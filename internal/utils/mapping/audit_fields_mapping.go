package mapping

import (
	"github.com/SscSPs/journal_posting/internal/core/domain"
	"github.com/SscSPs/journal_posting/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		Created:    d.Created,
		CreatedBy:  d.CreatedBy,
		Modified:   d.Modified,
		ModifiedBy: d.ModifiedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		Created:    m.Created,
		CreatedBy:  m.CreatedBy,
		Modified:   m.Modified,
		ModifiedBy: m.ModifiedBy,
	}
}
