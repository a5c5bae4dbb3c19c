package core

import (
	"testing"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUsageRate tests the engagement ratio and its clamping.
func TestUsageRate(t *testing.T) {
	tests := []struct {
		name     string
		entry    *schema.ModuleStatsEntry
		expected float64
	}{
		{
			name:     "nil entry",
			entry:    nil,
			expected: 0,
		},
		{
			name:     "no visits",
			entry:    &schema.ModuleStatsEntry{Active: 3},
			expected: 0,
		},
		{
			name:     "half engaged",
			entry:    &schema.ModuleStatsEntry{Visits: 10, Active: 5},
			expected: 0.5,
		},
		{
			name:     "active exceeds visits clamps to one",
			entry:    &schema.ModuleStatsEntry{Visits: 2, Active: 5},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, UsageRate(tt.entry), 0.0001)
		})
	}
}

// TestSatisfactionScore tests the heuristic blend of engagement and dwell.
func TestSatisfactionScore(t *testing.T) {
	tests := []struct {
		name     string
		entry    *schema.ModuleStatsEntry
		expected float64
	}{
		{
			name:     "nil entry",
			entry:    nil,
			expected: 0,
		},
		{
			name:     "baseline with no activity",
			entry:    &schema.ModuleStatsEntry{},
			expected: 2.5,
		},
		{
			name:     "full engagement short dwell",
			entry:    &schema.ModuleStatsEntry{Visits: 4, Active: 4},
			expected: 4.5,
		},
		{
			name:     "dwell contribution linear below saturation",
			entry:    &schema.ModuleStatsEntry{Visits: 4, AvgDuration: 7.5},
			expected: 3.0,
		},
		{
			name:     "dwell contribution capped",
			entry:    &schema.ModuleStatsEntry{Visits: 4, AvgDuration: 300},
			expected: 4.0,
		},
		{
			name:     "everything maxed clamps to five",
			entry:    &schema.ModuleStatsEntry{Visits: 4, Active: 4, AvgDuration: 60},
			expected: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SatisfactionScore(tt.entry), 0.0001)
		})
	}
}

// TestModuleRows tests row derivation and ordering.
func TestModuleRows(t *testing.T) {
	stats := schema.ModuleStatsMap{
		"beta":   {Visits: 5, Active: 2, TimeSpent: 10, AvgDuration: 2},
		"alpha":  {Visits: 5, Active: 5},
		"gamma":  {Visits: 9},
		"broken": nil,
	}

	rows := ModuleRows(stats)
	require.Len(t, rows, 3)

	// Visits descending, module id ascending on ties.
	assert.Equal(t, "gamma", rows[0].ModuleID)
	assert.Equal(t, "alpha", rows[1].ModuleID)
	assert.Equal(t, "beta", rows[2].ModuleID)

	assert.InDelta(t, 0.4, rows[2].UsageRate, 0.0001)
	assert.InDelta(t, 1.0, rows[1].UsageRate, 0.0001)
}

// TestRatingDistribution tests bucketing of visited modules.
func TestRatingDistribution(t *testing.T) {
	stats := schema.ModuleStatsMap{
		// score 2.5 -> rounds to 3 (banker-free math.Round on .5 goes up)
		"low": {Visits: 1},
		// score 4.5 -> rounds to 5
		"high": {Visits: 2, Active: 2},
		// never visited, excluded from the distribution
		"idle": {},
	}

	buckets := RatingDistribution(stats)
	require.Len(t, buckets, 5)

	assert.Equal(t, 1, buckets[2].Count) // rating 3
	assert.Equal(t, 1, buckets[4].Count) // rating 5
	assert.Equal(t, 0, buckets[0].Count)

	assert.InDelta(t, 0.5, buckets[2].Share, 0.0001)
	assert.InDelta(t, 0.5, buckets[4].Share, 0.0001)

	for i, b := range buckets {
		assert.Equal(t, i+1, b.Rating)
		assert.Equal(t, schema.RatingColorScale[i+1], b.Color)
	}
}

// TestRatingDistributionEmpty tests the all-zero distribution.
func TestRatingDistributionEmpty(t *testing.T) {
	buckets := RatingDistribution(schema.ModuleStatsMap{})
	require.Len(t, buckets, 5)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Share)
	}
}
