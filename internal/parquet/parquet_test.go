package parquet

import (
	"os"
	"path/filepath"
	"testing"

	pschema "github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleStatsRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(ModuleStatsRow))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"module_id",
		"visits",
		"active",
		"time_spent_minutes",
		"avg_duration_minutes",
		"last_visit_ms",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestLoginUnitRowStructTags(t *testing.T) {
	schema := parquet.SchemaOf(new(LoginUnitRow))
	require.NotNil(t, schema)

	for _, colName := range []string{"unit", "logins", "active_users", "last_login_ms"} {
		_, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteModuleStatsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "modules.parquet")

	ms := int64(1700000000000)
	data := []ModuleStatsRow{
		{ModuleID: "case-guide", Visits: 10, Active: 5, TimeSpentMinutes: 25, AvgDurationMinutes: 2.5, LastVisitMs: &ms},
		{ModuleID: "fund-tracker", Visits: 2},
	}

	require.NoError(t, WriteModuleStatsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestConvertModuleStats(t *testing.T) {
	entryA := pschema.NewModuleStatsEntry()
	entryA.Visits = 3
	entryA.LastVisit = 42

	stats := pschema.ModuleStatsMap{
		"zeta":  entryA,
		"alpha": pschema.NewModuleStatsEntry(),
		"nil":   nil,
	}

	rows := ConvertModuleStats(stats)
	require.Len(t, rows, 2)
	// Sorted by module id.
	assert.Equal(t, "alpha", rows[0].ModuleID)
	assert.Equal(t, "zeta", rows[1].ModuleID)
	require.NotNil(t, rows[1].LastVisitMs)
	assert.Equal(t, int64(42), *rows[1].LastVisitMs)
	assert.Nil(t, rows[0].LastVisitMs)
}

func TestConvertModuleDaily(t *testing.T) {
	entry := pschema.NewModuleStatsEntry()
	entry.DailyData = []pschema.DailyBucket{
		{Date: "2026-08-20", Visits: 2, TimeSpent: 5, LastVisit: 99},
		{Date: "2026-08-21", Visits: 1},
	}

	rows := ConvertModuleDaily(pschema.ModuleStatsMap{"case-guide": entry})
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-20", rows[0].Date)
	assert.Equal(t, int32(2), rows[0].Visits)
	require.NotNil(t, rows[0].LastVisitMs)
	assert.Nil(t, rows[1].LastVisitMs)
}

func TestConvertLoginUnits(t *testing.T) {
	stats := pschema.NewLoginStats()
	unit := stats.EnsureUnit("经侦支队一大队")
	unit.Logins = 4
	unit.LastLogin = 1234
	unit.EnsureUser("110001")
	unit.EnsureUser("110002")

	rows := ConvertLoginUnits(stats)
	require.Len(t, rows, 1)
	assert.Equal(t, int32(4), rows[0].Logins)
	assert.Equal(t, int32(2), rows[0].ActiveUsers)
	require.NotNil(t, rows[0].LastLoginMs)
	assert.Equal(t, int64(1234), *rows[0].LastLoginMs)

	assert.Nil(t, ConvertLoginUnits(nil))
}
