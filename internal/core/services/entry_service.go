package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"github.com/SscSPs/diary_app/internal/core/domain"
	portsrepo "github.com/SscSPs/diary_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/diary_app/internal/core/ports/services"
	"github.com/SscSPs/diary_app/internal/dto"
)

// DefaultListTimeout bounds connect plus list when no option overrides it.
const DefaultListTimeout = 8 * time.Second

// entryServiceImpl implements the EntrySvcFacade interface
type entryServiceImpl struct {
	BaseService
	entryRepo   portsrepo.EntryRepositoryFacade
	validator   *domain.EntryValidator
	listTimeout time.Duration
}

// EntryServiceOption is a functional option for configuring the entry service
type EntryServiceOption func(*entryServiceImpl)

// WithListTimeout sets the bounded wait for ListEntries. Zero or negative disables it.
func WithListTimeout(d time.Duration) EntryServiceOption {
	return func(s *entryServiceImpl) {
		s.listTimeout = d
	}
}

// WithGratitudeLimit sets the gratitude cap, 0 meaning unlimited.
func WithGratitudeLimit(limit int) EntryServiceOption {
	return func(s *entryServiceImpl) {
		s.validator = domain.NewEntryValidator(limit)
	}
}

// NewEntryService creates a new entry service with the provided options
func NewEntryService(repo portsrepo.EntryRepositoryFacade, options ...EntryServiceOption) portssvc.EntrySvcFacade {
	svc := &entryServiceImpl{
		entryRepo:   repo,
		validator:   domain.NewEntryValidator(domain.DefaultGratitudeLimit),
		listTimeout: DefaultListTimeout,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure entryServiceImpl implements the EntrySvcFacade interface
var _ portssvc.EntrySvcFacade = (*entryServiceImpl)(nil)

func (s *entryServiceImpl) Validator() *domain.EntryValidator {
	return s.validator
}

func (s *entryServiceImpl) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	listCtx := ctx
	if s.listTimeout > 0 {
		var cancel context.CancelFunc
		listCtx, cancel = context.WithTimeout(ctx, s.listTimeout)
		defer cancel()
	}

	entries, err := s.entryRepo.ListEntries(listCtx)
	if err != nil {
		if ctx.Err() == nil && errors.Is(listCtx.Err(), context.DeadlineExceeded) {
			s.LogError(ctx, err, "Listing entries exceeded bounded wait", slog.Duration("timeout", s.listTimeout))
			return nil, fmt.Errorf("%w: listing entries after %s", apperrors.ErrTimeout, s.listTimeout)
		}
		s.LogError(ctx, err, "Failed to list entries from repository")
		return nil, err
	}

	if entries == nil {
		entries = []domain.Entry{}
	}
	s.LogDebug(ctx, "Entries listed", slog.Int("count", len(entries)))
	return entries, nil
}

func (s *entryServiceImpl) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		// ErrNotFound is an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry by ID in repository", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryServiceImpl) CreateEntry(ctx context.Context, req dto.EntryRequest) (*domain.Entry, error) {
	input, err := s.validator.Validate(req.ToDraft())
	if err != nil {
		return nil, err
	}

	entry := &domain.Entry{}
	entry.Apply(input)
	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry in repository")
		return nil, fmt.Errorf("failed to create entry in service: %w", err)
	}

	s.LogInfo(ctx, "Entry created successfully in service", slog.String("entry_id", entry.ID))
	return entry, nil
}

func (s *entryServiceImpl) UpdateEntry(ctx context.Context, entryID string, req dto.EntryRequest) (*domain.Entry, error) {
	existing, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	input, err := s.validator.Validate(req.ToDraft())
	if err != nil {
		return nil, err
	}

	existing.Apply(input)
	if err := s.entryRepo.UpdateEntry(ctx, existing); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update entry in repository", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to update entry in service: %w", err)
	}

	s.LogInfo(ctx, "Entry updated successfully in service", slog.String("entry_id", entryID))
	return existing, nil
}

func (s *entryServiceImpl) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entry in repository", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Entry deleted successfully in service", slog.String("entry_id", entryID))
	return nil
}

func (s *entryServiceImpl) GetStats(ctx context.Context) (*domain.EntryStats, error) {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	stats := domain.ComputeStats(entries)
	return &stats, nil
}

func (s *entryServiceImpl) ExportEntries(ctx context.Context, format string) (*dto.ExportFile, error) {
	encode, ok := exporters[format]
	if !ok {
		return nil, apperrors.NewValidationError([]apperrors.FieldError{{
			Field:   "format",
			Message: fmt.Sprintf("unsupported export format %q (use csv or json)", format),
		}})
	}

	entries, err := s.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	chronological := make([]domain.Entry, len(entries))
	for i := range entries {
		chronological[len(entries)-1-i] = entries[i]
	}

	file, err := encode(chronological)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode export", slog.String("format", format))
		return nil, fmt.Errorf("failed to export entries: %w", err)
	}
	return file, nil
}
