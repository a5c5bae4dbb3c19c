package core

import (
	"testing"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrendSeriesEmptyStats tests that the series is continuous even with
// no recorded data.
func TestTrendSeriesEmptyStats(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) // a Monday

	points := TrendSeries(schema.ModuleStatsMap{}, 7, now)
	require.Len(t, points, 7)

	// Chronological, ending today.
	assert.Equal(t, "2026-08-18", points[0].Date)
	assert.Equal(t, "2026-08-24", points[6].Date)
	for _, p := range points {
		assert.Zero(t, p.Visits)
		assert.Zero(t, p.ActiveUsers)
		assert.Zero(t, p.AvgDuration)
	}

	// Weekday labels for the 7 day window.
	assert.Equal(t, "周二", points[0].Label)
	assert.Equal(t, "周一", points[6].Label)
}

// TestTrendSeriesSumsAcrossModules tests cross-module aggregation per day.
func TestTrendSeriesSumsAcrossModules(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	stats := schema.ModuleStatsMap{
		"alpha": {
			DailyData: []schema.DailyBucket{
				{Date: "2026-08-23", Visits: 2, Active: 1, TimeSpent: 10},
				{Date: "2026-08-24", Visits: 1, TimeSpent: 5},
			},
		},
		"beta": {
			DailyData: []schema.DailyBucket{
				{Date: "2026-08-24", Visits: 3, Active: 2, TimeSpent: 7},
			},
		},
	}

	points := TrendSeries(stats, 7, now)
	require.Len(t, points, 7)

	yesterday := points[5]
	assert.Equal(t, 2, yesterday.Visits)
	assert.Equal(t, 1, yesterday.ActiveUsers)
	assert.InDelta(t, 5.0, yesterday.AvgDuration, 0.0001)

	today := points[6]
	assert.Equal(t, 4, today.Visits)
	assert.Equal(t, 2, today.ActiveUsers)
	assert.InDelta(t, 3.0, today.AvgDuration, 0.0001)
}

// TestTrendSeriesMonthlyLabels tests month/day labels for the 30 day window.
func TestTrendSeriesMonthlyLabels(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	points := TrendSeries(schema.ModuleStatsMap{}, 30, now)
	require.Len(t, points, 30)
	assert.Equal(t, "7/26", points[0].Label)
	assert.Equal(t, "8/24", points[29].Label)
}

// TestTrendSeriesZeroDays tests the degenerate window.
func TestTrendSeriesZeroDays(t *testing.T) {
	assert.Empty(t, TrendSeries(schema.ModuleStatsMap{}, 0, time.Now()))
	assert.Empty(t, TrendSeries(schema.ModuleStatsMap{}, -3, time.Now()))
}
