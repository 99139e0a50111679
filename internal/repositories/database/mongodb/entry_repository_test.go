package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"github.com/SscSPs/diary_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type staticSource struct {
	coll *mongo.Collection
}

func (s staticSource) Collection(context.Context) (*mongo.Collection, error) { return s.coll, nil }
func (s staticSource) Ping(context.Context) error                            { return nil }

var fixedNow = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

func newTestRepo(mt *mtest.T) *MongoEntryRepository {
	repo := newMongoEntryRepository(staticSource{coll: mt.Coll})
	repo.now = func() time.Time { return fixedNow }
	return repo
}

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func entryDoc(oid primitive.ObjectID, date time.Time, mood int) bson.D {
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "date", Value: date},
		{Key: "mood", Value: mood},
		{Key: "learned", Value: "x"},
		{Key: "improvements", Value: "y"},
		{Key: "gratitude", Value: bson.A{"a"}},
		{Key: "lookingForward", Value: "z"},
		{Key: "news", Value: "n"},
		{Key: "createdAt", Value: fixedNow},
		{Key: "updatedAt", Value: fixedNow},
	}
}

func TestMongoEntryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("SaveEntry assigns id and timestamps", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		entry := &domain.Entry{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Mood: 7, Gratitude: []string{"a"}}
		require.NoError(mt, repo.SaveEntry(context.Background(), entry))

		assert.Len(mt, entry.ID, 24)
		assert.Equal(mt, fixedNow, entry.CreatedAt)
		assert.Equal(mt, fixedNow, entry.UpdatedAt)
	})

	mt.Run("SaveEntry stores millisecond timestamps", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		precise := time.Date(2024, 1, 2, 10, 0, 0, 123456789, time.UTC)
		repo.now = func() time.Time { return precise }
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		entry := &domain.Entry{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Mood: 7, Gratitude: []string{"a"}}
		require.NoError(mt, repo.SaveEntry(context.Background(), entry))

		want := time.Date(2024, 1, 2, 10, 0, 0, 123000000, time.UTC)
		assert.Equal(mt, want, entry.CreatedAt)
		assert.Equal(mt, want, entry.UpdatedAt)
	})

	mt.Run("SaveEntry store error", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 91, Message: "shutdown in progress"}))

		err := repo.SaveEntry(context.Background(), &domain.Entry{})
		assert.ErrorIs(mt, err, apperrors.ErrStoreUnavailable)
	})

	mt.Run("FindEntryByID found", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		oid := primitive.NewObjectID()
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns(mt), mtest.FirstBatch, entryDoc(oid, date, 6)))

		entry, err := repo.FindEntryByID(context.Background(), oid.Hex())

		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), entry.ID)
		assert.Equal(mt, 6, entry.Mood)
		assert.True(mt, entry.Date.Equal(date))
		assert.Equal(mt, []string{"a"}, entry.Gratitude)
	})

	mt.Run("FindEntryByID missing", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		_, err := repo.FindEntryByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("malformed id is not found", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		ctx := context.Background()

		_, err := repo.FindEntryByID(ctx, "not-an-object-id")
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
		assert.ErrorIs(mt, repo.UpdateEntry(ctx, &domain.Entry{ID: "nope"}), apperrors.ErrNotFound)
		assert.ErrorIs(mt, repo.DeleteEntry(ctx, "nope"), apperrors.ErrNotFound)
	})

	mt.Run("ListEntries", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		newer, older := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns(mt), mtest.FirstBatch,
				entryDoc(newer, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 8),
				entryDoc(older, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 3),
			),
			mtest.CreateCursorResponse(0, ns(mt), mtest.NextBatch),
		)

		entries, err := repo.ListEntries(context.Background())

		require.NoError(mt, err)
		require.Len(mt, entries, 2)
		assert.Equal(mt, newer.Hex(), entries[0].ID)
		assert.Equal(mt, older.Hex(), entries[1].ID)
	})

	mt.Run("ListEntries empty", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		entries, err := repo.ListEntries(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, entries)
		assert.Empty(mt, entries)
	})

	mt.Run("UpdateEntry", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		entry := &domain.Entry{ID: primitive.NewObjectID().Hex(), Mood: 9}
		require.NoError(mt, repo.UpdateEntry(context.Background(), entry))
		assert.Equal(mt, fixedNow, entry.UpdatedAt)
	})

	mt.Run("UpdateEntry missing", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateEntry(context.Background(), &domain.Entry{ID: primitive.NewObjectID().Hex()})
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("DeleteEntry", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)
		id := primitive.NewObjectID().Hex()

		assert.NoError(mt, repo.DeleteEntry(context.Background(), id))
		assert.ErrorIs(mt, repo.DeleteEntry(context.Background(), id), apperrors.ErrNotFound)
	})
}
