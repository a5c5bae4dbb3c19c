package statstore

import (
	"testing"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleRepoLoadMissing tests that an empty store yields an empty mapping.
func TestModuleRepoLoadMissing(t *testing.T) {
	repo := NewModuleStatsRepo(NewMemStore())
	stats := repo.Load()
	require.NotNil(t, stats)
	assert.Empty(t, stats)
}

// TestModuleRepoLoadCorrupt tests recovery from undecodable documents.
func TestModuleRepoLoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{{{{"},
		{name: "wrong type", raw: `"a string"`},
		{name: "json null", raw: "null"},
		{name: "array document", raw: "[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemStore()
			store.Put(schema.ModuleStatsKey, tt.raw)

			stats := NewModuleStatsRepo(store).Load()
			require.NotNil(t, stats)
			assert.Empty(t, stats)
		})
	}
}

// TestModuleRepoLoadLegacyEntry tests schema-tolerant upgrade of partial and
// damaged entries.
func TestModuleRepoLoadLegacyEntry(t *testing.T) {
	store := NewMemStore()
	// An old-style document: null entry, missing rollups, negative counters,
	// short hourly template and duplicated daily dates.
	store.Put(schema.ModuleStatsKey, `{
		"ghost": null,
		"legacy": {"visits": 5, "timeSpent": 10},
		"damaged": {
			"visits": -3,
			"active": -1,
			"timeSpent": -2,
			"lastVisit": -5,
			"dailyData": [
				{"date": "2026-08-20", "visits": 1, "timeSpent": 2},
				{"date": "", "visits": 9},
				{"date": "2026-08-20", "visits": 2, "active": 1, "lastVisit": 99},
				{"date": "2026-08-19", "visits": -4}
			],
			"hourlyData": [{"hour": 0, "visits": 7}]
		}
	}`)

	stats := NewModuleStatsRepo(store).Load()
	require.Len(t, stats, 3)

	ghost := stats["ghost"]
	require.NotNil(t, ghost)
	assert.Len(t, ghost.HourlyData, schema.HoursPerDay)

	legacy := stats["legacy"]
	require.NotNil(t, legacy)
	assert.Equal(t, 5, legacy.Visits)
	assert.Len(t, legacy.HourlyData, schema.HoursPerDay)
	assert.InDelta(t, 2.0, legacy.AvgDuration, 0.0001) // rederived from counters

	damaged := stats["damaged"]
	require.NotNil(t, damaged)
	assert.Zero(t, damaged.Visits)
	assert.Zero(t, damaged.Active)
	assert.Zero(t, damaged.TimeSpent)
	assert.Zero(t, damaged.LastVisit)

	// Duplicate dates merged, dateless bucket dropped, sorted ascending.
	require.Len(t, damaged.DailyData, 2)
	assert.Equal(t, "2026-08-19", damaged.DailyData[0].Date)
	assert.Zero(t, damaged.DailyData[0].Visits)
	assert.Equal(t, "2026-08-20", damaged.DailyData[1].Date)
	assert.Equal(t, 3, damaged.DailyData[1].Visits)
	assert.Equal(t, 1, damaged.DailyData[1].Active)
	assert.Equal(t, int64(99), damaged.DailyData[1].LastVisit)
	assert.InDelta(t, 2.0, damaged.DailyData[1].TimeSpent, 0.0001)

	// Malformed hourly template rebuilt from scratch.
	require.Len(t, damaged.HourlyData, schema.HoursPerDay)
	assert.Zero(t, damaged.HourlyData[0].Visits)
}

// TestModuleRepoSaveLoadRoundTrip tests persistence of the full shape.
func TestModuleRepoSaveLoadRoundTrip(t *testing.T) {
	store := NewMemStore()
	repo := NewModuleStatsRepo(store)

	stats := schema.ModuleStatsMap{}
	entry := repo.EnsureEntry(stats, "case-guide")
	entry.Visits = 2
	entry.TimeSpent = 5
	entry.RecomputeAvgDuration()
	entry.DailyBucketFor("2026-08-20").Visits = 2
	entry.HourSlot(9).Visits = 2

	require.NoError(t, repo.Save(stats))

	loaded := repo.Load()
	require.Len(t, loaded, 1)
	got := loaded["case-guide"]
	assert.Equal(t, 2, got.Visits)
	assert.InDelta(t, 2.5, got.AvgDuration, 0.0001)
	require.Len(t, got.DailyData, 1)
	assert.Equal(t, 2, got.DailyData[0].Visits)
	assert.Equal(t, 2, got.HourlyData[9].Visits)
}

// TestModuleRepoDailyCap tests the cap applies during normalization too.
func TestModuleRepoDailyCap(t *testing.T) {
	store := NewMemStore()
	repo := NewModuleStatsRepo(store)

	stats := schema.ModuleStatsMap{}
	entry := repo.EnsureEntry(stats, "case-guide")
	for day := 0; day < schema.MaxDailyEntries+30; day++ {
		entry.DailyData = append(entry.DailyData, schema.DailyBucket{
			Date:   schema.DateKey(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)),
			Visits: 1,
		})
	}
	require.NoError(t, repo.Save(stats))

	loaded := repo.Load()
	assert.Len(t, loaded["case-guide"].DailyData, schema.MaxDailyEntries)
}

// TestModuleRepoEnsureEntry tests entry creation semantics.
func TestModuleRepoEnsureEntry(t *testing.T) {
	repo := NewModuleStatsRepo(NewMemStore())
	stats := schema.ModuleStatsMap{"existing": {Visits: 1}}

	created := repo.EnsureEntry(stats, "fresh")
	require.NotNil(t, created)
	assert.Len(t, created.HourlyData, schema.HoursPerDay)

	assert.Same(t, stats["existing"], repo.EnsureEntry(stats, "existing"))

	// A nil placeholder is replaced rather than returned.
	stats["broken"] = nil
	assert.NotNil(t, repo.EnsureEntry(stats, "broken"))
}
