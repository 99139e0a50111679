package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format entries are exchanged in.
const DateLayout = "2006-01-02"

// Mood bounds for an entry.
const (
	MinMood = 1
	MaxMood = 10
)

// DefaultGratitudeLimit caps the number of gratitude items accepted per entry. Zero disables the cap.
const DefaultGratitudeLimit = 3

// Entry is one daily journal record, the only persisted entity.
type Entry struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"` // Calendar date at UTC midnight
	Mood           int       `json:"mood"`
	Learned        string    `json:"learned"`
	Improvements   string    `json:"improvements"`
	Gratitude      []string  `json:"gratitude"`
	LookingForward string    `json:"lookingForward"`
	News           string    `json:"news"`
	Timestamps
}

// EntryDraft is an unvalidated entry payload as received from the API or the form.
type EntryDraft struct {
	Date           string   `json:"date" validate:"required,calendardate"`
	Mood           int      `json:"mood" validate:"required,min=1,max=10"`
	Learned        string   `json:"learned" validate:"required"`
	Improvements   string   `json:"improvements" validate:"required"`
	Gratitude      []string `json:"gratitude" validate:"required,min=1"`
	LookingForward string   `json:"lookingForward" validate:"required"`
	News           string   `json:"news" validate:"required"`
}

// EntryInput holds the mutable fields of an entry after validation.
type EntryInput struct {
	Date           time.Time
	Mood           int
	Learned        string
	Improvements   string
	Gratitude      []string
	LookingForward string
	News           string
}

// Normalize trims every text field and drops blank gratitude items. It is the
// view the required checks run against; stored text keeps its original spacing.
func (d EntryDraft) Normalize() EntryDraft {
	return EntryDraft{
		Date:           strings.TrimSpace(d.Date),
		Mood:           d.Mood,
		Learned:        strings.TrimSpace(d.Learned),
		Improvements:   strings.TrimSpace(d.Improvements),
		Gratitude:      FilterBlank(d.Gratitude),
		LookingForward: strings.TrimSpace(d.LookingForward),
		News:           strings.TrimSpace(d.News),
	}
}

// Clean drops blank gratitude items and trims the date. Text fields are kept as entered.
func (d EntryDraft) Clean() EntryDraft {
	return EntryDraft{
		Date:           strings.TrimSpace(d.Date),
		Mood:           d.Mood,
		Learned:        d.Learned,
		Improvements:   d.Improvements,
		Gratitude:      DropBlank(d.Gratitude),
		LookingForward: d.LookingForward,
		News:           d.News,
	}
}

// DraftFromEntry returns a draft initialised from a stored entry.
func DraftFromEntry(e Entry) EntryDraft {
	gratitude := make([]string, len(e.Gratitude))
	copy(gratitude, e.Gratitude)
	return EntryDraft{
		Date:           e.Date.Format(DateLayout),
		Mood:           e.Mood,
		Learned:        e.Learned,
		Improvements:   e.Improvements,
		Gratitude:      gratitude,
		LookingForward: e.LookingForward,
		News:           e.News,
	}
}

// Apply copies validated mutable fields onto the entry. ID and CreatedAt are left untouched.
func (e *Entry) Apply(in EntryInput) {
	e.Date = in.Date
	e.Mood = in.Mood
	e.Learned = in.Learned
	e.Improvements = in.Improvements
	e.Gratitude = in.Gratitude
	e.LookingForward = in.LookingForward
	e.News = in.News
}

// FilterBlank returns the non-blank items of s, trimmed. The result is never nil.
func FilterBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// DropBlank returns the items of s that are not blank, unmodified. The result is never nil.
func DropBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC3339 timestamp and
// returns the calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q", s)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
