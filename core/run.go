package core

import (
	"context"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// ModuleStatsSnapshot returns the normalized module-stats mapping.
// This is the read API the reporting view polls.
func ModuleStatsSnapshot(mgr contract.StoreManager) schema.ModuleStatsMap {
	return NewRecorder(mgr).ModuleStats()
}

// LoginStatsSnapshot returns the normalized login record.
func LoginStatsSnapshot(mgr contract.StoreManager) *schema.LoginStats {
	return NewRecorder(mgr).LoginStats()
}

// BuildUsageReport derives every dashboard series from one stats snapshot.
func BuildUsageReport(mgr contract.StoreManager, timeframe schema.Timeframe, now time.Time) *schema.UsageReport {
	stats := ModuleStatsSnapshot(mgr)
	return &schema.UsageReport{
		GeneratedAt: now,
		Timeframe:   timeframe,
		Modules:     ModuleRows(stats),
		Trend:       TrendSeries(stats, schema.TimeframeDays(timeframe), now),
		Segments:    SegmentTotals(HourlyTotals(stats)),
		Ratings:     RatingDistribution(stats),
	}
}

// BuildLoginReport derives the login dashboard from one snapshot.
func BuildLoginReport(mgr contract.StoreManager, now time.Time) *schema.LoginReport {
	stats := LoginStatsSnapshot(mgr)
	return &schema.LoginReport{
		GeneratedAt: now,
		TotalLogins: stats.TotalLogins,
		LastLogin:   stats.LastLogin,
		Units:       UnitCoverage(stats),
	}
}

// RunTrackedSession records a full viewing session for a module: visit on
// entry, engagement after the dwell delay, elapsed time on ctx cancellation.
// Skip-listed modules are not tracked and return immediately.
func RunTrackedSession(ctx context.Context, mgr contract.StoreManager, moduleID string) {
	if moduleID == "" || !schema.ShouldTrack(moduleID) {
		return
	}
	rec := NewRecorder(mgr)
	session := rec.StartSession(moduleID)
	<-ctx.Done()
	session.End()
}
