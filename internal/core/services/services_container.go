package services

import (
	"time"

	portsrepo "github.com/SscSPs/diary_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/diary_app/internal/core/ports/services"
)

// ContainerConfig carries the settings services care about.
type ContainerConfig struct {
	ListTimeout    time.Duration
	GratitudeLimit int
}

// NewServiceContainer wires every service against the provided repositories.
func NewServiceContainer(cfg ContainerConfig, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Entry: NewEntryService(repos.EntryRepo,
			WithListTimeout(cfg.ListTimeout),
			WithGratitudeLimit(cfg.GratitudeLimit),
		),
		Health: NewHealthService(repos.EntryRepo),
	}
}
