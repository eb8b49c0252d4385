package services

import (
	"github.com/SscSPs/journal_posting/internal/core/identifier"
	portsrepo "github.com/SscSPs/journal_posting/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_posting/internal/core/ports/services"
	"github.com/SscSPs/journal_posting/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// One identifier scheme for the whole deployment
	container.Journal = NewJournalService(repos.JournalEntryRepo, identifier.NewGenerator(cfg.IdentifierScheme))

	return container
}
