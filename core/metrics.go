package core

import (
	"math"
	"sort"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// Dwell saturation constants for the satisfaction heuristic.
const (
	dwellSaturationMinutes = 15.0 // avgDuration beyond this adds nothing
	dwellContributionCap   = 1.5
)

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// UsageRate is the share of visits that crossed the sustained-engagement
// threshold, clamped to [0,1]. Active increments on a timer independent of
// the visit counter, so the ratio can transiently exceed 1 in raw data.
func UsageRate(entry *schema.ModuleStatsEntry) float64 {
	if entry == nil || entry.Visits == 0 {
		return 0
	}
	return clamp(float64(entry.Active)/float64(entry.Visits), 0, 1)
}

// SatisfactionScore blends engagement rate and dwell time into a 0-5 score:
//
//	clamp(2.5 + usageRate*2 + min(avgDuration/15, 1.5), 0, 5)
//
// The coefficients are an inherited heuristic with no measured derivation;
// they are preserved exactly for dashboard compatibility.
func SatisfactionScore(entry *schema.ModuleStatsEntry) float64 {
	if entry == nil {
		return 0
	}
	dwell := math.Min(entry.AvgDuration/dwellSaturationMinutes, dwellContributionCap)
	return clamp(2.5+UsageRate(entry)*2+dwell, 0, 5)
}

// ModuleRows derives the per-module dashboard rows, sorted by visits
// descending with module id as the tiebreaker.
func ModuleRows(stats schema.ModuleStatsMap) []schema.ModuleReportRow {
	rows := make([]schema.ModuleReportRow, 0, len(stats))
	for moduleID, entry := range stats {
		if entry == nil {
			continue
		}
		rows = append(rows, schema.ModuleReportRow{
			ModuleID:    moduleID,
			Visits:      entry.Visits,
			Active:      entry.Active,
			UsageRate:   UsageRate(entry),
			TimeSpent:   entry.TimeSpent,
			AvgDuration: entry.AvgDuration,
			Score:       SatisfactionScore(entry),
			LastVisit:   entry.LastVisit,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Visits != rows[j].Visits {
			return rows[i].Visits > rows[j].Visits
		}
		return rows[i].ModuleID < rows[j].ModuleID
	})
	return rows
}

// RatingDistribution buckets every visited module into one of five integer
// satisfaction buckets (round of the score, floored at 1) and counts
// membership per bucket.
func RatingDistribution(stats schema.ModuleStatsMap) []schema.RatingBucket {
	counts := [5]int{}
	total := 0
	for _, entry := range stats {
		if entry == nil || entry.Visits == 0 {
			continue
		}
		rating := int(math.Round(SatisfactionScore(entry)))
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}
		counts[rating-1]++
		total++
	}

	buckets := make([]schema.RatingBucket, 5)
	for i := range buckets {
		rating := i + 1
		share := 0.0
		if total > 0 {
			share = float64(counts[i]) / float64(total)
		}
		buckets[i] = schema.RatingBucket{
			Rating: rating,
			Count:  counts[i],
			Share:  share,
			Color:  schema.RatingColorScale[rating],
		}
	}
	return buckets
}
