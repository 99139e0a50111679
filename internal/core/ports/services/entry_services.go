package services

import (
	"context"

	"github.com/SscSPs/diary_app/internal/core/domain"
	"github.com/SscSPs/diary_app/internal/dto"
)

// EntryReaderSvc defines read operations for diary entries
type EntryReaderSvc interface {
	// ListEntries returns every entry, newest date first, within the configured bounded wait.
	ListEntries(ctx context.Context) ([]domain.Entry, error)

	// GetEntryByID returns a single entry.
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// GetStats summarises mood history.
	GetStats(ctx context.Context) (*domain.EntryStats, error)

	// ExportEntries renders all entries in chronological order as csv or json.
	ExportEntries(ctx context.Context, format string) (*dto.ExportFile, error)
}

// EntryWriterSvc defines write operations for diary entries
type EntryWriterSvc interface {
	CreateEntry(ctx context.Context, req dto.EntryRequest) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.EntryRequest) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryValidatorSvc exposes the validation rules shared by the API and the form.
type EntryValidatorSvc interface {
	Validator() *domain.EntryValidator
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
	EntryValidatorSvc
}
