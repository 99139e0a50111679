package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntryBody is the stored content of a diary entry. Postgres keeps it as a JSONB document.
type EntryBody struct {
	Date           time.Time `bson:"date" json:"date"` // UTC midnight
	Mood           int       `bson:"mood" json:"mood"`
	Learned        string    `bson:"learned" json:"learned"`
	Improvements   string    `bson:"improvements" json:"improvements"`
	Gratitude      []string  `bson:"gratitude" json:"gratitude"`
	LookingForward string    `bson:"lookingForward" json:"lookingForward"`
	News           string    `bson:"news" json:"news"`
}

// Timestamps are maintained by the repositories.
type Timestamps struct {
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Entry is the document stored in the diaryentries collection.
type Entry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EntryBody  `bson:",inline"`
	Timestamps `bson:",inline"`
}

// PgEntry is a row of the diary_entries table.
type PgEntry struct {
	ID        string    // UUID
	EntryDate time.Time // DATE column, used for ordering
	Document  EntryBody // JSONB
	Timestamps
}
