package repositories

import (
	"context"

	"github.com/SscSPs/diary_app/internal/core/domain"
)

// EntryReader defines read operations for diary entries
type EntryReader interface {
	// FindEntryByID retrieves one entry. Unknown or malformed ids return apperrors.ErrNotFound.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves every entry ordered by date descending.
	ListEntries(ctx context.Context) ([]domain.Entry, error)
}

// EntryWriter defines write operations for diary entries
type EntryWriter interface {
	// SaveEntry inserts a new entry, filling in its ID and timestamps.
	SaveEntry(ctx context.Context, entry *domain.Entry) error

	// UpdateEntry replaces the mutable fields of an existing entry and refreshes UpdatedAt.
	UpdateEntry(ctx context.Context, entry *domain.Entry) error

	// DeleteEntry removes an entry by ID.
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
	HealthChecker
}
