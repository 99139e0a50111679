package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/diary_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", in: "2024-03-05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 keeps calendar day", in: "2024-03-05T23:30:00+08:00", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", in: " 2024-03-05 ", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", in: "05/03/2024", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestFilterBlank(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, domain.FilterBlank([]string{"", " a ", "  ", "b"}))
	assert.NotNil(t, domain.FilterBlank(nil))
	assert.Empty(t, domain.FilterBlank(nil))
}

func TestEntry_ApplyKeepsIdentity(t *testing.T) {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	e := domain.Entry{ID: "abc", Mood: 2, Timestamps: domain.Timestamps{CreatedAt: created}}

	e.Apply(domain.EntryInput{Mood: 9, Learned: "l", Gratitude: []string{"g"}})

	assert.Equal(t, "abc", e.ID)
	assert.Equal(t, created, e.CreatedAt)
	assert.Equal(t, 9, e.Mood)
	assert.Equal(t, []string{"g"}, e.Gratitude)
}

func TestDraftFromEntry(t *testing.T) {
	e := domain.Entry{
		Date:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		Mood:      4,
		Gratitude: []string{"one"},
	}

	d := domain.DraftFromEntry(e)
	d.Gratitude[0] = "changed"

	assert.Equal(t, "2024-02-29", d.Date)
	assert.Equal(t, 4, d.Mood)
	assert.Equal(t, "one", e.Gratitude[0])
}

func TestDropBlank(t *testing.T) {
	assert.Equal(t, []string{" a ", "b"}, domain.DropBlank([]string{"", " a ", "  ", "b"}))
	assert.NotNil(t, domain.DropBlank(nil))
}

func TestEntryDraft_Clean(t *testing.T) {
	d := domain.EntryDraft{Date: " 2024-01-01", Mood: 3, Learned: " x ", Gratitude: []string{" ", "g "}}

	c := d.Clean()

	assert.Equal(t, "2024-01-01", c.Date)
	assert.Equal(t, " x ", c.Learned)
	assert.Equal(t, []string{"g "}, c.Gratitude)
}
