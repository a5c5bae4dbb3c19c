package core

import (
	"testing"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSegmentTableCoversDay asserts the segment table tiles hours 0-23
// exactly once, so the fold neither drops nor double-counts an hour.
func TestSegmentTableCoversDay(t *testing.T) {
	covered := map[int]int{}
	for _, segment := range schema.HourlySegments {
		require.LessOrEqual(t, segment.Start, segment.End)
		for hour := segment.Start; hour <= segment.End; hour++ {
			covered[hour]++
		}
	}
	require.Len(t, covered, schema.HoursPerDay)
	for hour := 0; hour < schema.HoursPerDay; hour++ {
		assert.Equal(t, 1, covered[hour], "hour %d", hour)
	}
}

// TestHourlyTotals tests the cross-module hourly fold.
func TestHourlyTotals(t *testing.T) {
	alpha := schema.NewModuleStatsEntry()
	alpha.HourlyData[9].Visits = 3
	alpha.HourlyData[9].Active = 1
	alpha.HourlyData[14].TimeSpent = 2.5

	beta := schema.NewModuleStatsEntry()
	beta.HourlyData[9].Visits = 2

	stats := schema.ModuleStatsMap{
		"alpha":  alpha,
		"beta":   beta,
		"broken": {HourlyData: []schema.HourlySlot{{Hour: 0}}}, // malformed, skipped
		"gone":   nil,
	}

	totals := HourlyTotals(stats)
	assert.Equal(t, 5, totals[9].Visits)
	assert.Equal(t, 1, totals[9].Active)
	assert.InDelta(t, 2.5, totals[14].TimeSpent, 0.0001)
	assert.Equal(t, 9, totals[9].Hour)
}

// TestSegmentTotals tests the day-part fold and shares.
func TestSegmentTotals(t *testing.T) {
	entry := schema.NewModuleStatsEntry()
	entry.HourlyData[9].Visits = 3  // am-peak
	entry.HourlyData[10].Visits = 1 // am-peak
	entry.HourlyData[22].Visits = 4 // late

	totals := HourlyTotals(schema.ModuleStatsMap{"alpha": entry})
	segments := SegmentTotals(totals)
	require.Len(t, segments, len(schema.HourlySegments))

	byID := map[string]schema.SegmentTotal{}
	for _, s := range segments {
		byID[s.ID] = s
	}

	assert.Equal(t, 4, byID["am-peak"].Visits)
	assert.InDelta(t, 0.5, byID["am-peak"].Share, 0.0001)
	assert.Equal(t, 4, byID["late"].Visits)
	assert.InDelta(t, 0.5, byID["late"].Share, 0.0001)
	assert.Zero(t, byID["overnight"].Visits)
	assert.Zero(t, byID["overnight"].Share)
}

// TestSegmentTotalsEmptyDay tests shares with no recorded visits.
func TestSegmentTotalsEmptyDay(t *testing.T) {
	segments := SegmentTotals(HourlyTotals(schema.ModuleStatsMap{}))
	for _, s := range segments {
		assert.Zero(t, s.Visits)
		assert.Zero(t, s.Share)
	}
}
