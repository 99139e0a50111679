package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"github.com/SscSPs/diary_app/internal/core/domain"
	portsrepo "github.com/SscSPs/diary_app/internal/core/ports/repositories"
	"github.com/SscSPs/diary_app/internal/models"
	"github.com/SscSPs/diary_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for diary entries stored as JSONB documents.
func newPgxEntryRepository(pool *pgxpool.Pool) *PgxEntryRepository {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `id::text, entry_date, document, created_at, updated_at`

func scanEntry(row pgx.Row) (domain.Entry, error) {
	var m models.PgEntry
	if err := row.Scan(&m.ID, &m.EntryDate, &m.Document, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.Entry{}, err
	}
	return mapping.ToDomainPgEntry(m), nil
}

// SaveEntry inserts a new entry with a fresh UUID.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := mapping.ToModelPgEntry(*entry)
	m.ID = uuid.NewString()
	m.CreatedAt, m.UpdatedAt = now, now

	query := `
		INSERT INTO diary_entries (id, entry_date, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.Pool.Exec(ctx, query, m.ID, m.EntryDate, m.Document, m.CreatedAt, m.UpdatedAt); err != nil {
		return fmt.Errorf("%w: failed to insert entry: %w", apperrors.ErrStoreUnavailable, err)
	}

	entry.ID = m.ID
	entry.CreatedAt, entry.UpdatedAt = now, now
	return nil
}

// FindEntryByID retrieves an entry by its UUID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	if _, err := uuid.Parse(entryID); err != nil {
		return nil, apperrors.ErrNotFound
	}

	query := `SELECT ` + entryColumns + ` FROM diary_entries WHERE id = $1;`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find entry %s: %w", apperrors.ErrStoreUnavailable, entryID, err)
	}
	return &entry, nil
}

// ListEntries retrieves every entry, newest date first.
func (r *PgxEntryRepository) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM diary_entries ORDER BY entry_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list entries: %w", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan entry: %w", apperrors.ErrStoreUnavailable, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate entries: %w", apperrors.ErrStoreUnavailable, err)
	}
	return entries, nil
}

// UpdateEntry replaces the document and date of an existing entry.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry *domain.Entry) error {
	if _, err := uuid.Parse(entry.ID); err != nil {
		return apperrors.ErrNotFound
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := mapping.ToModelPgEntry(*entry)
	query := `
		UPDATE diary_entries
		SET entry_date = $2, document = $3, updated_at = $4
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ID, m.EntryDate, m.Document, now)
	if err != nil {
		return fmt.Errorf("%w: failed to update entry %s: %w", apperrors.ErrStoreUnavailable, entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	entry.UpdatedAt = now
	return nil
}

// DeleteEntry removes an entry by UUID.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	if _, err := uuid.Parse(entryID); err != nil {
		return apperrors.ErrNotFound
	}

	tag, err := r.Pool.Exec(ctx, `DELETE FROM diary_entries WHERE id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete entry %s: %w", apperrors.ErrStoreUnavailable, entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
