package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStats summarises the mood history of a set of entries.
type EntryStats struct {
	Count         int             `json:"count"`
	AverageMood   decimal.Decimal `json:"averageMood"`
	MinMood       int             `json:"minMood"`
	MaxMood       int             `json:"maxMood"`
	FirstDate     *time.Time      `json:"firstDate,omitempty"`
	LastDate      *time.Time      `json:"lastDate,omitempty"`
	CurrentStreak int             `json:"currentStreak"` // consecutive days ending on LastDate
}

// ComputeStats derives EntryStats from entries in any order.
func ComputeStats(entries []Entry) EntryStats {
	stats := EntryStats{Count: len(entries), AverageMood: decimal.Zero}
	if len(entries) == 0 {
		return stats
	}

	total := decimal.Zero
	stats.MinMood, stats.MaxMood = entries[0].Mood, entries[0].Mood
	days := make(map[time.Time]struct{}, len(entries))
	for _, e := range entries {
		total = total.Add(decimal.NewFromInt(int64(e.Mood)))
		if e.Mood < stats.MinMood {
			stats.MinMood = e.Mood
		}
		if e.Mood > stats.MaxMood {
			stats.MaxMood = e.Mood
		}
		days[calendarDay(e.Date)] = struct{}{}
	}
	stats.AverageMood = total.Div(decimal.NewFromInt(int64(len(entries)))).Round(2)

	ordered := make([]time.Time, 0, len(days))
	for d := range days {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })
	first, last := ordered[0], ordered[len(ordered)-1]
	stats.FirstDate, stats.LastDate = &first, &last

	stats.CurrentStreak = 1
	for i := len(ordered) - 1; i > 0; i-- {
		if !ordered[i-1].AddDate(0, 0, 1).Equal(ordered[i]) {
			break
		}
		stats.CurrentStreak++
	}
	return stats
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
