package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestModuleIDFromPath tests module id derivation from page paths.
func TestModuleIDFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "plain html page",
			path:     "/tools/case-guide.html",
			expected: "case-guide",
		},
		{
			name:     "root path",
			path:     "/",
			expected: "index",
		},
		{
			name:     "bare index page",
			path:     "/index.html",
			expected: "index",
		},
		{
			name:     "uppercase normalized",
			path:     "/Fund-Tracker.HTML",
			expected: "fund-tracker",
		},
		{
			name:     "no directory component",
			path:     "report.html",
			expected: "report",
		},
		{
			name:     "no extension",
			path:     "/dashboard",
			expected: "dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ModuleIDFromPath(tt.path))
		})
	}
}

// TestShouldTrack tests the tracking skip list.
func TestShouldTrack(t *testing.T) {
	assert.False(t, ShouldTrack("index"))
	assert.False(t, ShouldTrack("login"))
	assert.False(t, ShouldTrack("login2"))
	assert.True(t, ShouldTrack("case-guide"))
}

// TestTrendLabel tests trend label formats across window sizes.
func TestTrendLabel(t *testing.T) {
	// 2026-08-24 is a Monday.
	monday := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		date       time.Time
		windowDays int
		expected   string
	}{
		{
			name:       "weekly window uses weekday",
			date:       monday,
			windowDays: 7,
			expected:   "周一",
		},
		{
			name:       "weekly window sunday",
			date:       monday.AddDate(0, 0, -1),
			windowDays: 7,
			expected:   "周日",
		},
		{
			name:       "monthly window uses month and day",
			date:       monday,
			windowDays: 30,
			expected:   "8/24",
		},
		{
			name:       "quarterly window collapses to year-month",
			date:       monday,
			windowDays: 90,
			expected:   "2026-08",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrendLabel(tt.date, tt.windowDays))
		})
	}
}

// TestDateKey tests the daily bucket key format.
func TestDateKey(t *testing.T) {
	ts := time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-05", DateKey(ts))
}

// TestTimeframeDays tests timeframe resolution with fallback.
func TestTimeframeDays(t *testing.T) {
	assert.Equal(t, 7, TimeframeDays(Week))
	assert.Equal(t, 30, TimeframeDays(Month))
	assert.Equal(t, 90, TimeframeDays(Quarter))
	assert.Equal(t, 7, TimeframeDays(Timeframe("bogus")))
}
