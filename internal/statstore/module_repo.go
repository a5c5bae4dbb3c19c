package statstore

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// ModuleStatsRepo is the schema-aware accessor for the per-module stats
// document. All normalization happens in Load so every caller observes a
// schema-consistent shape; legacy or corrupt entries are upgraded in place
// on the next Save.
type ModuleStatsRepo struct {
	store contract.KVStore
}

// NewModuleStatsRepo returns a repository over the given store.
func NewModuleStatsRepo(store contract.KVStore) *ModuleStatsRepo {
	return &ModuleStatsRepo{store: store}
}

// Load reads and normalizes the whole module-stats mapping. Missing, corrupt
// or non-object documents yield an empty mapping; load never fails.
func (r *ModuleStatsRepo) Load() schema.ModuleStatsMap {
	raw, _, _, err := r.store.Get(schema.ModuleStatsKey)
	if err != nil {
		return schema.ModuleStatsMap{}
	}

	var stats schema.ModuleStatsMap
	if err := json.Unmarshal(raw, &stats); err != nil || stats == nil {
		return schema.ModuleStatsMap{}
	}

	for moduleID, entry := range stats {
		if entry == nil {
			stats[moduleID] = schema.NewModuleStatsEntry()
			continue
		}
		normalizeModuleEntry(entry)
	}
	return stats
}

// Save persists the whole mapping under one storage slot. A failed write is
// a StorageFault: the caller keeps its in-memory state and must not treat
// the error as fatal.
func (r *ModuleStatsRepo) Save(stats schema.ModuleStatsMap) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.store.Set(schema.ModuleStatsKey, raw, schema.StatSchemaVersion, time.Now().Unix())
}

// EnsureEntry returns the entry for the given module, creating a zero-valued
// one with the 24-slot hourly template when absent.
func (r *ModuleStatsRepo) EnsureEntry(stats schema.ModuleStatsMap, moduleID string) *schema.ModuleStatsEntry {
	entry, ok := stats[moduleID]
	if !ok || entry == nil {
		entry = schema.NewModuleStatsEntry()
		stats[moduleID] = entry
	}
	return entry
}

// normalizeModuleEntry repairs an entry written by an older schema version or
// damaged in storage: counters clamp to zero, dailyData becomes a sorted,
// deduplicated, capped slice, and hourlyData is rebuilt whenever its fixed
// 24-slot shape is broken.
func normalizeModuleEntry(entry *schema.ModuleStatsEntry) {
	if entry.Visits < 0 {
		entry.Visits = 0
	}
	if entry.Active < 0 {
		entry.Active = 0
	}
	if entry.TimeSpent < 0 {
		entry.TimeSpent = 0
	}
	if entry.LastVisit < 0 {
		entry.LastVisit = 0
	}

	entry.DailyData = normalizeDailyData(entry.DailyData)
	entry.HourlyData = normalizeHourlyData(entry.HourlyData)

	// AvgDuration is derived state; rederive it instead of trusting the blob.
	entry.RecomputeAvgDuration()
}

// normalizeDailyData sorts buckets ascending by date, merges duplicate dates,
// drops dateless buckets and evicts the oldest entries beyond the cap.
func normalizeDailyData(buckets []schema.DailyBucket) []schema.DailyBucket {
	if len(buckets) == 0 {
		return []schema.DailyBucket{}
	}

	merged := make(map[string]schema.DailyBucket, len(buckets))
	for _, bucket := range buckets {
		if bucket.Date == "" {
			continue
		}
		if bucket.Visits < 0 {
			bucket.Visits = 0
		}
		if bucket.Active < 0 {
			bucket.Active = 0
		}
		if bucket.TimeSpent < 0 {
			bucket.TimeSpent = 0
		}
		prev, ok := merged[bucket.Date]
		if !ok {
			merged[bucket.Date] = bucket
			continue
		}
		prev.Visits += bucket.Visits
		prev.Active += bucket.Active
		prev.TimeSpent += bucket.TimeSpent
		if bucket.LastVisit > prev.LastVisit {
			prev.LastVisit = bucket.LastVisit
		}
		merged[bucket.Date] = prev
	}

	normalized := make([]schema.DailyBucket, 0, len(merged))
	for _, bucket := range merged {
		normalized = append(normalized, bucket)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Date < normalized[j].Date
	})
	if overflow := len(normalized) - schema.MaxDailyEntries; overflow > 0 {
		normalized = normalized[overflow:]
	}
	return normalized
}

// normalizeHourlyData enforces the fixed 24-slot template. A malformed slice
// is replaced wholesale; a well-sized one keeps its counters but has the hour
// index reasserted, since slot position is authoritative.
func normalizeHourlyData(slots []schema.HourlySlot) []schema.HourlySlot {
	if len(slots) != schema.HoursPerDay {
		return schema.NewHourlyData()
	}
	for hour := range slots {
		slots[hour].Hour = hour
		if slots[hour].Visits < 0 {
			slots[hour].Visits = 0
		}
		if slots[hour].Active < 0 {
			slots[hour].Active = 0
		}
		if slots[hour].TimeSpent < 0 {
			slots[hour].TimeSpent = 0
		}
	}
	return slots
}
