package mapping

import (
	"time"

	"github.com/SscSPs/diary_app/internal/core/domain"
	"github.com/SscSPs/diary_app/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToModelEntryBody converts the content fields of a domain Entry.
func ToModelEntryBody(d domain.Entry) models.EntryBody {
	gratitude := d.Gratitude
	if gratitude == nil {
		gratitude = []string{}
	}
	return models.EntryBody{
		Date:           d.Date,
		Mood:           d.Mood,
		Learned:        d.Learned,
		Improvements:   d.Improvements,
		Gratitude:      gratitude,
		LookingForward: d.LookingForward,
		News:           d.News,
	}
}

func toDomainEntry(id string, b models.EntryBody, ts models.Timestamps) domain.Entry {
	return domain.Entry{
		ID:             id,
		Date:           b.Date.UTC(),
		Mood:           b.Mood,
		Learned:        b.Learned,
		Improvements:   b.Improvements,
		Gratitude:      domain.DropBlank(b.Gratitude),
		LookingForward: b.LookingForward,
		News:           b.News,
		Timestamps: domain.Timestamps{
			CreatedAt: ts.CreatedAt,
			UpdatedAt: ts.UpdatedAt,
		},
	}
}

// ToModelEntry converts a domain Entry to the Mongo document. An empty or malformed ID is left zero.
func ToModelEntry(d domain.Entry) models.Entry {
	oid, _ := primitive.ObjectIDFromHex(d.ID)
	return models.Entry{
		ID:        oid,
		EntryBody: ToModelEntryBody(d),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainEntry converts a Mongo document to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return toDomainEntry(m.ID.Hex(), m.EntryBody, m.Timestamps)
}

// ToDomainEntrySlice converts a slice of Mongo documents to domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}

// ToModelPgEntry converts a domain Entry to a Postgres row.
func ToModelPgEntry(d domain.Entry) models.PgEntry {
	return models.PgEntry{
		ID:        d.ID,
		EntryDate: d.Date,
		Document:  ToModelEntryBody(d),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainPgEntry converts a Postgres row to a domain Entry. The DATE column wins over the document's date.
func ToDomainPgEntry(m models.PgEntry) domain.Entry {
	body := m.Document
	if !m.EntryDate.IsZero() {
		y, mo, day := m.EntryDate.Date()
		body.Date = time.Date(y, mo, day, 0, 0, 0, 0, time.UTC)
	}
	return toDomainEntry(m.ID, body, m.Timestamps)
}
