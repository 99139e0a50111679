package dto

import (
	"time"

	"github.com/SscSPs/diary_app/internal/core/domain"
)

// EntryRequest is the JSON payload for creating or replacing an entry.
type EntryRequest struct {
	Date           string   `json:"date" example:"2024-01-01"`
	Mood           int      `json:"mood" example:"7"`
	Learned        string   `json:"learned"`
	Improvements   string   `json:"improvements"`
	Gratitude      []string `json:"gratitude"`
	LookingForward string   `json:"lookingForward"`
	News           string   `json:"news"`
}

// ToDraft converts the request into an unvalidated domain draft.
func (r EntryRequest) ToDraft() domain.EntryDraft {
	return domain.EntryDraft{
		Date:           r.Date,
		Mood:           r.Mood,
		Learned:        r.Learned,
		Improvements:   r.Improvements,
		Gratitude:      r.Gratitude,
		LookingForward: r.LookingForward,
		News:           r.News,
	}
}

// EntryRequestFromDraft is the inverse of ToDraft.
func EntryRequestFromDraft(d domain.EntryDraft) EntryRequest {
	return EntryRequest{
		Date:           d.Date,
		Mood:           d.Mood,
		Learned:        d.Learned,
		Improvements:   d.Improvements,
		Gratitude:      d.Gratitude,
		LookingForward: d.LookingForward,
		News:           d.News,
	}
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	ID             string    `json:"id"`
	Date           string    `json:"date" example:"2024-01-01"`
	Mood           int       `json:"mood"`
	Learned        string    `json:"learned"`
	Improvements   string    `json:"improvements"`
	Gratitude      []string  `json:"gratitude"`
	LookingForward string    `json:"lookingForward"`
	News           string    `json:"news"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO
func ToEntryResponse(e *domain.Entry) EntryResponse {
	gratitude := e.Gratitude
	if gratitude == nil {
		gratitude = []string{}
	}
	return EntryResponse{
		ID:             e.ID,
		Date:           e.Date.Format(domain.DateLayout),
		Mood:           e.Mood,
		Learned:        e.Learned,
		Improvements:   e.Improvements,
		Gratitude:      gratitude,
		LookingForward: e.LookingForward,
		News:           e.News,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ToListEntryResponse converts entries to response DTOs. The result is never nil so it encodes as [].
func ToListEntryResponse(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}

// StatsResponse is the JSON form of domain.EntryStats.
type StatsResponse struct {
	Count         int    `json:"count"`
	AverageMood   string `json:"averageMood" example:"6.25"`
	MinMood       int    `json:"minMood"`
	MaxMood       int    `json:"maxMood"`
	FirstDate     string `json:"firstDate,omitempty"`
	LastDate      string `json:"lastDate,omitempty"`
	CurrentStreak int    `json:"currentStreak"`
}

// ToStatsResponse converts domain stats to the response DTO.
func ToStatsResponse(s *domain.EntryStats) StatsResponse {
	res := StatsResponse{
		Count:         s.Count,
		AverageMood:   s.AverageMood.StringFixed(2),
		MinMood:       s.MinMood,
		MaxMood:       s.MaxMood,
		CurrentStreak: s.CurrentStreak,
	}
	if s.FirstDate != nil {
		res.FirstDate = s.FirstDate.Format(domain.DateLayout)
	}
	if s.LastDate != nil {
		res.LastDate = s.LastDate.Format(domain.DateLayout)
	}
	return res
}

// ExportFile is a rendered export ready to be sent as a download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
