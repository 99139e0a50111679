package web

import (
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/diary_app/internal/core/domain"
)

// Chart geometry in SVG user units.
const (
	ChartWidth   = 640
	ChartHeight  = 260
	chartPadLeft = 36
	chartPadTop  = 12
	chartPadRgt  = 16
	chartPadBot  = 32
)

// ChartPoint is one plotted entry.
type ChartPoint struct {
	X, Y  float64
	Mood  int
	Label string // MM/DD
	Date  string // 2006-01-02
}

// ChartTick is an axis tick with its position on that axis.
type ChartTick struct {
	Pos   float64
	Label string
}

// MoodChart is the mood-over-time line chart. It is derived from entries only.
type MoodChart struct {
	Width, Height int
	Left, Right   float64
	Top, Bottom   float64
	Points        []ChartPoint
	YTicks        []ChartTick
}

// Empty reports whether there is nothing to plot.
func (c MoodChart) Empty() bool {
	return len(c.Points) == 0
}

// Polyline renders the points for an SVG <polyline points="..."> attribute.
func (c MoodChart) Polyline() string {
	parts := make([]string, len(c.Points))
	for i, p := range c.Points {
		parts[i] = formatCoord(p.X) + "," + formatCoord(p.Y)
	}
	return strings.Join(parts, " ")
}

// NewMoodChart plots mood against date, oldest first, with a fixed 1-10 y axis.
func NewMoodChart(entries []domain.Entry) MoodChart {
	c := MoodChart{
		Width:  ChartWidth,
		Height: ChartHeight,
		Left:   chartPadLeft,
		Right:  ChartWidth - chartPadRgt,
		Top:    chartPadTop,
		Bottom: ChartHeight - chartPadBot,
	}
	for m := domain.MinMood; m <= domain.MaxMood; m++ {
		c.YTicks = append(c.YTicks, ChartTick{Pos: c.moodY(m), Label: strconv.Itoa(m)})
	}

	sorted := make([]domain.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	n := len(sorted)
	for i, e := range sorted {
		x := (c.Left + c.Right) / 2
		if n > 1 {
			x = c.Left + float64(i)*(c.Right-c.Left)/float64(n-1)
		}
		c.Points = append(c.Points, ChartPoint{
			X:     x,
			Y:     c.moodY(e.Mood),
			Mood:  e.Mood,
			Label: e.Date.Format("01/02"),
			Date:  e.Date.Format(domain.DateLayout),
		})
	}
	return c
}

func (c MoodChart) moodY(mood int) float64 {
	if mood < domain.MinMood {
		mood = domain.MinMood
	}
	if mood > domain.MaxMood {
		mood = domain.MaxMood
	}
	span := float64(domain.MaxMood - domain.MinMood)
	return c.Bottom - float64(mood-domain.MinMood)/span*(c.Bottom-c.Top)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
