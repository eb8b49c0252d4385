package services

// ServiceContainer holds instances of all the application services.
// It is handed to the HTTP and CLI wrappers.
type ServiceContainer struct {
	Journal JournalSvcFacade
}
