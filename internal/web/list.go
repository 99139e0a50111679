package web

import (
	"net/url"

	"github.com/SscSPs/diary_app/internal/core/domain"
)

// ListRow is one rendered entry.
type ListRow struct {
	ID             string
	Date           string // 2006-01-02
	Weekday        string
	Mood           int
	Learned        string
	Improvements   string
	Gratitude      []string
	LookingForward string
	News           string
	EditURL        string
	DeleteURL      string
}

// ListView is the entry list component.
type ListView struct {
	Rows     []ListRow
	Disabled bool
}

// Empty reports whether the empty state should be shown.
func (v ListView) Empty() bool {
	return len(v.Rows) == 0
}

// NewListView renders entries in the order given. disabled greys out edit and delete.
func NewListView(entries []domain.Entry, disabled bool) ListView {
	rows := make([]ListRow, 0, len(entries))
	for _, e := range entries {
		id := url.PathEscape(e.ID)
		rows = append(rows, ListRow{
			ID:             e.ID,
			Date:           e.Date.Format(domain.DateLayout),
			Weekday:        e.Date.Weekday().String(),
			Mood:           e.Mood,
			Learned:        e.Learned,
			Improvements:   e.Improvements,
			Gratitude:      domain.FilterBlank(e.Gratitude),
			LookingForward: e.LookingForward,
			News:           e.News,
			EditURL:        "/entries/" + id + "/edit",
			DeleteURL:      "/entries/" + id + "/delete",
		})
	}
	return ListView{Rows: rows, Disabled: disabled}
}
