package mongodb

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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionSource hands out the entry collection, connecting first if needed.
// *database.Connector satisfies it.
type CollectionSource interface {
	Collection(ctx context.Context) (*mongo.Collection, error)
	Ping(ctx context.Context) error
}

type MongoEntryRepository struct {
	source CollectionSource
	now    func() time.Time
}

func newMongoEntryRepository(source CollectionSource) *MongoEntryRepository {
	return &MongoEntryRepository{
		source: source,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Ensure implementation matches interface
var _ portsrepo.EntryRepositoryFacade = (*MongoEntryRepository)(nil)

// stamp returns the current time at the millisecond precision BSON dates store.
func (r *MongoEntryRepository) stamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func (r *MongoEntryRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	coll, err := r.source.Collection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry collection: %w", err)
	}
	return coll, nil
}

// SaveEntry inserts a new entry and fills in its ID and timestamps.
func (r *MongoEntryRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	now := r.stamp()
	doc := mapping.ToModelEntry(*entry)
	doc.ID = primitive.NilObjectID
	doc.CreatedAt, doc.UpdatedAt = now, now

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("%w: failed to insert entry: %w", apperrors.ErrStoreUnavailable, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("%w: unexpected inserted id type %T", apperrors.ErrStoreUnavailable, res.InsertedID)
	}

	entry.ID = oid.Hex()
	entry.CreatedAt, entry.UpdatedAt = now, now
	return nil
}

// FindEntryByID retrieves an entry by its hex ObjectID.
func (r *MongoEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var doc models.Entry
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find entry %s: %w", apperrors.ErrStoreUnavailable, entryID, err)
	}

	entry := mapping.ToDomainEntry(doc)
	return &entry, nil
}

// ListEntries retrieves every entry, newest date first.
func (r *MongoEntryRepository) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list entries: %w", apperrors.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	docs := []models.Entry{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: failed to decode entries: %w", apperrors.ErrStoreUnavailable, err)
	}
	return mapping.ToDomainEntrySlice(docs), nil
}

// UpdateEntry replaces the mutable fields of an existing entry.
func (r *MongoEntryRepository) UpdateEntry(ctx context.Context, entry *domain.Entry) error {
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	now := r.stamp()
	body := mapping.ToModelEntryBody(*entry)
	update := bson.M{"$set": bson.M{
		"date":           body.Date,
		"mood":           body.Mood,
		"learned":        body.Learned,
		"improvements":   body.Improvements,
		"gratitude":      body.Gratitude,
		"lookingForward": body.LookingForward,
		"news":           body.News,
		"updatedAt":      now,
	}}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("%w: failed to update entry %s: %w", apperrors.ErrStoreUnavailable, entry.ID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	entry.UpdatedAt = now
	return nil
}

// DeleteEntry removes an entry by ID.
func (r *MongoEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%w: failed to delete entry %s: %w", apperrors.ErrStoreUnavailable, entryID, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoEntryRepository) Ping(ctx context.Context) error {
	return r.source.Ping(ctx)
}
