package pgsql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"github.com/SscSPs/diary_app/internal/core/domain"
	"github.com/SscSPs/diary_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// EntryRepositoryTestSuite runs against a real database when DIARY_TEST_PGSQL_URL is set.
type EntryRepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxEntryRepository
}

func TestEntryRepositoryTestSuite(t *testing.T) {
	if os.Getenv("DIARY_TEST_PGSQL_URL") == "" {
		t.Skip("DIARY_TEST_PGSQL_URL not set")
	}
	suite.Run(t, new(EntryRepositoryTestSuite))
}

func (s *EntryRepositoryTestSuite) SetupSuite() {
	url := os.Getenv("DIARY_TEST_PGSQL_URL")
	s.Require().NoError(database.RunMigrations(url, "file://../../../../migrations"))

	pool, err := database.NewPgxPool(context.Background(), url, database.PgxPoolOptions{MaxConns: 2})
	s.Require().NoError(err)
	s.pool = pool
	s.repo = newPgxEntryRepository(pool)
}

func (s *EntryRepositoryTestSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
}

func (s *EntryRepositoryTestSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE diary_entries;`)
	s.Require().NoError(err)
}

func (s *EntryRepositoryTestSuite) newEntry(date string, mood int) *domain.Entry {
	d, err := domain.ParseDate(date)
	s.Require().NoError(err)
	return &domain.Entry{
		Date: d, Mood: mood, Learned: "x", Improvements: "y",
		Gratitude: []string{"a"}, LookingForward: "z", News: "n",
	}
}

func (s *EntryRepositoryTestSuite) TestCRUD() {
	ctx := context.Background()
	entry := s.newEntry("2024-01-01", 7)

	s.Require().NoError(s.repo.SaveEntry(ctx, entry))
	_, err := uuid.Parse(entry.ID)
	s.Require().NoError(err)

	found, err := s.repo.FindEntryByID(ctx, entry.ID)
	s.Require().NoError(err)
	s.Equal(7, found.Mood)
	s.Equal("2024-01-01", found.Date.Format(domain.DateLayout))
	s.Equal([]string{"a"}, found.Gratitude)

	created := found.CreatedAt
	time.Sleep(5 * time.Millisecond)
	found.Mood = 9
	s.Require().NoError(s.repo.UpdateEntry(ctx, found))

	updated, err := s.repo.FindEntryByID(ctx, entry.ID)
	s.Require().NoError(err)
	s.Equal(9, updated.Mood)
	s.True(updated.CreatedAt.Equal(created))
	s.True(updated.UpdatedAt.After(created))

	s.Require().NoError(s.repo.DeleteEntry(ctx, entry.ID))
	s.ErrorIs(s.repo.DeleteEntry(ctx, entry.ID), apperrors.ErrNotFound)
	_, err = s.repo.FindEntryByID(ctx, entry.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EntryRepositoryTestSuite) TestListEntriesNewestFirst() {
	ctx := context.Background()
	for _, e := range []*domain.Entry{s.newEntry("2024-01-02", 5), s.newEntry("2024-01-03", 6), s.newEntry("2024-01-01", 4)} {
		s.Require().NoError(s.repo.SaveEntry(ctx, e))
	}

	entries, err := s.repo.ListEntries(ctx)

	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal("2024-01-03", entries[0].Date.Format(domain.DateLayout))
	s.Equal("2024-01-01", entries[2].Date.Format(domain.DateLayout))
}

func (s *EntryRepositoryTestSuite) TestUnknownAndMalformedIDs() {
	ctx := context.Background()

	_, err := s.repo.FindEntryByID(ctx, "not-a-uuid")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.repo.UpdateEntry(ctx, &domain.Entry{ID: uuid.NewString()}), apperrors.ErrNotFound)
	s.ErrorIs(s.repo.DeleteEntry(ctx, uuid.NewString()), apperrors.ErrNotFound)
}
