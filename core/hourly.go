package core

import "github.com/Eysn0130/EconX-AI-Hub2/schema"

// HourlyTotals sums every module's 24 hourly slots into one hour-indexed
// distribution for the whole portal.
func HourlyTotals(stats schema.ModuleStatsMap) [schema.HoursPerDay]schema.HourlySlot {
	var totals [schema.HoursPerDay]schema.HourlySlot
	for hour := range totals {
		totals[hour].Hour = hour
	}
	for _, entry := range stats {
		if entry == nil || len(entry.HourlyData) != schema.HoursPerDay {
			continue
		}
		for hour, slot := range entry.HourlyData {
			totals[hour].Visits += slot.Visits
			totals[hour].Active += slot.Active
			totals[hour].TimeSpent += slot.TimeSpent
		}
	}
	return totals
}

// SegmentTotals folds the 24 hour totals into the dashboard's named day
// parts. The segment table covers hours 0-23 exactly once, so the fold
// neither drops nor double-counts an hour.
func SegmentTotals(totals [schema.HoursPerDay]schema.HourlySlot) []schema.SegmentTotal {
	dayVisits := 0
	for _, slot := range totals {
		dayVisits += slot.Visits
	}

	segments := make([]schema.SegmentTotal, 0, len(schema.HourlySegments))
	for _, segment := range schema.HourlySegments {
		out := schema.SegmentTotal{ID: segment.ID, Label: segment.Label}
		for hour := segment.Start; hour <= segment.End; hour++ {
			out.Visits += totals[hour].Visits
			out.Active += totals[hour].Active
			out.TimeSpent += totals[hour].TimeSpent
		}
		if dayVisits > 0 {
			out.Share = float64(out.Visits) / float64(dayVisits)
		}
		segments = append(segments, out)
	}
	return segments
}
