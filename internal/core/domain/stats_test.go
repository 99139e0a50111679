package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/diary_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := domain.ComputeStats(nil)

	assert.Equal(t, 0, stats.Count)
	assert.True(t, stats.AverageMood.Equal(decimal.Zero))
	assert.Nil(t, stats.FirstDate)
	assert.Equal(t, 0, stats.CurrentStreak)
}

func TestComputeStats(t *testing.T) {
	entries := []domain.Entry{
		{Date: day(2024, 1, 5), Mood: 8},
		{Date: day(2024, 1, 1), Mood: 3},
		{Date: day(2024, 1, 4), Mood: 6},
		{Date: day(2024, 1, 3), Mood: 5},
	}

	stats := domain.ComputeStats(entries)

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, "5.5", stats.AverageMood.String())
	assert.Equal(t, 3, stats.MinMood)
	assert.Equal(t, 8, stats.MaxMood)
	require.NotNil(t, stats.FirstDate)
	require.NotNil(t, stats.LastDate)
	assert.Equal(t, day(2024, 1, 1), *stats.FirstDate)
	assert.Equal(t, day(2024, 1, 5), *stats.LastDate)
	assert.Equal(t, 3, stats.CurrentStreak)
}

func TestComputeStats_RoundsAverage(t *testing.T) {
	entries := []domain.Entry{
		{Date: day(2024, 1, 1), Mood: 1},
		{Date: day(2024, 1, 1), Mood: 2},
		{Date: day(2024, 1, 3), Mood: 2},
	}

	stats := domain.ComputeStats(entries)

	assert.Equal(t, "1.67", stats.AverageMood.String())
	assert.Equal(t, 1, stats.CurrentStreak)
}
