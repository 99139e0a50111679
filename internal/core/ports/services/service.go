package services

import "context"

// ServiceContainer holds instances of all the application services.
// Handlers receive it from main and pick the facades they need.
type ServiceContainer struct {
	Entry  EntrySvcFacade
	Health HealthSvc
}

// HealthSvc reports on the backing store.
type HealthSvc interface {
	CheckStore(ctx context.Context) error
}
