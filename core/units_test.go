package core

import (
	"testing"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/statstore"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnitCoverage tests coverage shares and ordering.
func TestUnitCoverage(t *testing.T) {
	stats := &schema.LoginStats{
		TotalLogins: 10,
		Units: map[string]*schema.UnitEntry{
			"经侦支队一大队": {
				Logins:    6,
				LastLogin: 1000,
				Users: map[string]*schema.UserEntry{
					"110001": {Logins: 3},
					"110002": {Logins: 3},
					"110003": {Logins: 1},
				},
			},
			"贵阳市分局联络组": {
				Logins:    4,
				LastLogin: 2000,
				Users: map[string]*schema.UserEntry{
					"200001": {Logins: 4},
				},
			},
			"empty": nil,
		},
	}

	rows := UnitCoverage(stats)
	require.Len(t, rows, 2)

	assert.Equal(t, "经侦支队一大队", rows[0].Unit)
	assert.Equal(t, 3, rows[0].ActiveUsers)
	assert.InDelta(t, 0.75, rows[0].Coverage, 0.0001)

	assert.Equal(t, "贵阳市分局联络组", rows[1].Unit)
	assert.Equal(t, 1, rows[1].ActiveUsers)
	assert.InDelta(t, 0.25, rows[1].Coverage, 0.0001)
	assert.Equal(t, int64(2000), rows[1].LastLogin)
}

// TestUnitCoverageNilStats tests the empty result for missing data.
func TestUnitCoverageNilStats(t *testing.T) {
	assert.Empty(t, UnitCoverage(nil))
	assert.Empty(t, UnitCoverage(schema.NewLoginStats()))
}

// TestBuildUsageReport tests that one snapshot feeds every series.
func TestBuildUsageReport(t *testing.T) {
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	mgr, _ := statstore.NewMemManager()
	rec := NewRecorder(mgr)
	rec.now = func() time.Time { return at }
	rec.RecordVisit("case-guide")
	rec.RecordVisit("fund-tracker")

	report := BuildUsageReport(mgr, schema.Week, at)

	require.NotNil(t, report)
	assert.Equal(t, schema.Week, report.Timeframe)
	assert.Len(t, report.Modules, 2)
	assert.Len(t, report.Trend, 7)
	assert.Len(t, report.Segments, len(schema.HourlySegments))
	assert.Len(t, report.Ratings, 5)
}
