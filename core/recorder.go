// Package core implements the portal usage tracking engine: the event
// recorder, the session tracker and the metrics derivation layer.
package core

import (
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/statstore"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// Recorder is the public mutation API for usage events. It is the only
// component permitted to mutate repository state; everything above it
// (sessions, CLI, MCP) funnels through these four calls.
//
// Every call is a whole-document read-modify-write against the durable
// store. A failed persist is a StorageFault: it is logged and the in-memory
// result stands for the rest of the call, so a storage outage costs at most
// the current session's analytics.
type Recorder struct {
	modules *statstore.ModuleStatsRepo
	logins  *statstore.LoginStatsRepo

	now         func() time.Time // injectable for tests
	activeDelay time.Duration
}

// NewRecorder returns a Recorder over the configured store manager.
func NewRecorder(mgr contract.StoreManager) *Recorder {
	store := mgr.GetStatsStore()
	return &Recorder{
		modules:     statstore.NewModuleStatsRepo(store),
		logins:      statstore.NewLoginStatsRepo(store),
		now:         time.Now,
		activeDelay: schema.ActiveDelay,
	}
}

// RecordVisit registers one visit to a module: lifetime counters, today's
// daily bucket and the current hour's slot all move together.
func (r *Recorder) RecordVisit(moduleID string) {
	if moduleID == "" {
		return
	}
	now := r.now()
	nowMs := now.UnixMilli()

	stats := r.modules.Load()
	entry := r.modules.EnsureEntry(stats, moduleID)

	entry.Visits++
	entry.LastVisit = nowMs
	entry.RecomputeAvgDuration()

	day := entry.DailyBucketFor(schema.DateKey(now))
	day.Visits++
	day.LastVisit = nowMs

	slot := entry.HourSlot(now.Hour())
	slot.Visits++

	r.persistModules(stats)
}

// RecordActive registers sustained engagement for a module. A module that
// was never visited cannot become active, so an absent entry is a no-op.
func (r *Recorder) RecordActive(moduleID string) {
	if moduleID == "" {
		return
	}
	stats := r.modules.Load()
	entry, ok := stats[moduleID]
	if !ok {
		return
	}
	now := r.now()

	entry.Active++
	entry.DailyBucketFor(schema.DateKey(now)).Active++
	entry.HourSlot(now.Hour()).Active++

	r.persistModules(stats)
}

// RecordTimeSpent adds a session's elapsed wall-clock time to a module.
// Sessions shorter than the trackable floor are noise and dropped.
func (r *Recorder) RecordTimeSpent(moduleID string, elapsed time.Duration) {
	if moduleID == "" || elapsed < schema.MinTrackableDuration {
		return
	}
	now := r.now()
	minutes := elapsed.Minutes()

	stats := r.modules.Load()
	entry := r.modules.EnsureEntry(stats, moduleID)

	entry.TimeSpent += minutes
	entry.RecomputeAvgDuration()

	entry.DailyBucketFor(schema.DateKey(now)).TimeSpent += minutes
	entry.HourSlot(now.Hour()).TimeSpent += minutes

	r.persistModules(stats)
}

// RecordLogin attributes one login signal to the operator's unit. Repeated
// signals from the same operator inside the dedup window only refresh the
// lastLogin timestamps; the three counters increment in lockstep or not at
// all. Returns the attribution for caller-side display, nil on a no-op.
func (r *Recorder) RecordLogin(operatorID string) *schema.LoginAttribution {
	if operatorID == "" {
		return nil
	}
	now := r.now()
	nowMs := now.UnixMilli()
	unit := schema.ResolveUnit(operatorID)

	stats := r.logins.Load()
	unitEntry := stats.EnsureUnit(unit)
	userEntry := unitEntry.EnsureUser(operatorID)

	withinWindow := userEntry.LastLogin > 0 &&
		time.Duration(nowMs-userEntry.LastLogin)*time.Millisecond < schema.LoginDedupWindow

	userEntry.LastLogin = nowMs
	unitEntry.LastLogin = nowMs
	stats.LastLogin = nowMs

	if !withinWindow {
		userEntry.Logins++
		unitEntry.Logins++
		stats.TotalLogins++
	}

	if err := r.logins.Save(stats); err != nil {
		contract.LogWarn("failed to persist login stats", err)
	}

	return &schema.LoginAttribution{OperatorID: operatorID, Unit: unit, Timestamp: nowMs}
}

// persistModules saves the module mapping, downgrading a storage failure to
// a warning.
func (r *Recorder) persistModules(stats schema.ModuleStatsMap) {
	if err := r.modules.Save(stats); err != nil {
		contract.LogWarn("failed to persist module stats", err)
	}
}

// ModuleStats returns the normalized module-stats snapshot. Read-only.
func (r *Recorder) ModuleStats() schema.ModuleStatsMap {
	return r.modules.Load()
}

// LoginStats returns the normalized login snapshot. Read-only.
func (r *Recorder) LoginStats() *schema.LoginStats {
	return r.logins.Load()
}
