package core

import (
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// TrendSeries produces one point per trailing calendar day, ending today,
// by summing each module's daily bucket for that date across all modules.
// Days with no data yield zero-valued points, so the series always has
// exactly `days` chronologically ordered entries.
func TrendSeries(stats schema.ModuleStatsMap, days int, now time.Time) []schema.TrendPoint {
	if days <= 0 {
		return []schema.TrendPoint{}
	}

	// Index each module's buckets by date once instead of scanning the slice
	// per day per module.
	indexes := make([]map[string]*schema.DailyBucket, 0, len(stats))
	for _, entry := range stats {
		if entry == nil || len(entry.DailyData) == 0 {
			continue
		}
		index := make(map[string]*schema.DailyBucket, len(entry.DailyData))
		for i := range entry.DailyData {
			index[entry.DailyData[i].Date] = &entry.DailyData[i]
		}
		indexes = append(indexes, index)
	}

	points := make([]schema.TrendPoint, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset)
		dateKey := schema.DateKey(date)

		var visits, active int
		var timeSpent float64
		for _, index := range indexes {
			if bucket, ok := index[dateKey]; ok {
				visits += bucket.Visits
				active += bucket.Active
				timeSpent += bucket.TimeSpent
			}
		}

		avgDuration := 0.0
		if visits > 0 {
			avgDuration = timeSpent / float64(visits)
		}

		points = append(points, schema.TrendPoint{
			Label:       schema.TrendLabel(date, days),
			Date:        dateKey,
			Visits:      visits,
			ActiveUsers: active,
			AvgDuration: avgDuration,
		})
	}
	return points
}
