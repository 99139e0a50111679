package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/diary_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryOn(id string, y int, m time.Month, d int, mood int) domain.Entry {
	return domain.Entry{
		ID:             id,
		Date:           time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Mood:           mood,
		Learned:        "learned " + id,
		Improvements:   "improve",
		Gratitude:      []string{"sun", ""},
		LookingForward: "weekend",
		News:           "none",
	}
}

func TestNewListView(t *testing.T) {
	view := NewListView([]domain.Entry{entryOn("b", 2024, 1, 2, 6), entryOn("a", 2024, 1, 1, 5)}, true)

	require.Len(t, view.Rows, 2)
	assert.False(t, view.Empty())
	assert.True(t, view.Disabled)
	assert.Equal(t, "2024-01-02", view.Rows[0].Date)
	assert.Equal(t, "Tuesday", view.Rows[0].Weekday)
	assert.Equal(t, []string{"sun"}, view.Rows[0].Gratitude)
	assert.Equal(t, "/entries/b/edit", view.Rows[0].EditURL)
	assert.Equal(t, "/entries/b/delete", view.Rows[0].DeleteURL)
}

func TestNewListView_Empty(t *testing.T) {
	view := NewListView(nil, false)
	assert.True(t, view.Empty())
	assert.NotNil(t, view.Rows)
}

func TestNewMoodChart_SortsAscending(t *testing.T) {
	chart := NewMoodChart([]domain.Entry{
		entryOn("c", 2024, 1, 3, 10),
		entryOn("a", 2024, 1, 1, 1),
		entryOn("b", 2024, 1, 2, 5),
	})

	require.Len(t, chart.Points, 3)
	assert.Equal(t, []string{"01/01", "01/02", "01/03"}, []string{chart.Points[0].Label, chart.Points[1].Label, chart.Points[2].Label})
	assert.Equal(t, chart.Left, chart.Points[0].X)
	assert.Equal(t, chart.Right, chart.Points[2].X)
	assert.Equal(t, chart.Bottom, chart.Points[0].Y)
	assert.Equal(t, chart.Top, chart.Points[2].Y)
	assert.Len(t, chart.YTicks, 10)
	assert.Equal(t, "1", chart.YTicks[0].Label)
	assert.Equal(t, "10", chart.YTicks[9].Label)
	assert.Equal(t, "36.0,228.0 330.0,"+formatCoord(chart.Points[1].Y)+" 624.0,12.0", chart.Polyline())
}

func TestNewMoodChart_SinglePointAndEmpty(t *testing.T) {
	single := NewMoodChart([]domain.Entry{entryOn("a", 2024, 1, 1, 5)})
	require.Len(t, single.Points, 1)
	assert.Equal(t, (single.Left+single.Right)/2, single.Points[0].X)

	empty := NewMoodChart(nil)
	assert.True(t, empty.Empty())
	assert.Len(t, empty.YTicks, 10)
}

func TestTemplates_RenderPage(t *testing.T) {
	entries := []domain.Entry{entryOn("b", 2024, 1, 2, 6), entryOn("a", 2024, 1, 1, 5)}
	page := Page{
		Form:           NewForm(nil),
		List:           NewListView(entries, false),
		Chart:          NewMoodChart(entries),
		Banner:         &Banner{Kind: BannerError, Message: "Could not load <entries>"},
		GratitudeLimit: 3,
	}

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, "index.html", page))
	html := buf.String()

	assert.Contains(t, html, "banner-error")
	assert.Contains(t, html, "Could not load &lt;entries&gt;")
	assert.Contains(t, html, `action="/entries/form"`)
	assert.Contains(t, html, "<polyline")
	assert.Contains(t, html, "learned b")
	assert.Contains(t, html, `action="/entries/a/delete"`)
	assert.Contains(t, html, "(up to 3)")
}

func TestTemplates_RenderEmptyState(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, "index.html", Page{
		Form:  NewForm(nil),
		List:  NewListView(nil, false),
		Chart: NewMoodChart(nil),
	}))

	assert.Contains(t, buf.String(), "No entries yet")
	assert.NotContains(t, buf.String(), "<polyline")
}
