package domain

import "time"

// Timestamps holds the store-managed timestamps of a document.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
