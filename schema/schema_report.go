package schema

import "time"

// ModuleReportRow is one dashboard row of derived per-module metrics.
type ModuleReportRow struct {
	ModuleID    string  `json:"moduleId"`
	Visits      int     `json:"visits"`
	Active      int     `json:"active"`
	UsageRate   float64 `json:"usageRate"` // active/visits clamped to [0,1]
	TimeSpent   float64 `json:"timeSpent"` // minutes
	AvgDuration float64 `json:"avgDuration"`
	Score       float64 `json:"score"` // satisfaction heuristic, 0-5
	LastVisit   int64   `json:"lastVisit"`
}

// TrendPoint is one day of the trailing trend series, summed across modules.
type TrendPoint struct {
	Label       string  `json:"label"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Visits      int     `json:"visits"`
	ActiveUsers int     `json:"activeUsers"`
	AvgDuration float64 `json:"avgDuration"` // minutes
}

// SegmentTotal is the fold of hour-of-day totals into one named day part.
type SegmentTotal struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Visits    int     `json:"visits"`
	Active    int     `json:"active"`
	TimeSpent float64 `json:"timeSpent"`
	Share     float64 `json:"share"` // visits share of the whole day, [0,1]
}

// RatingBucket is one of the five integer satisfaction buckets.
type RatingBucket struct {
	Rating int     `json:"rating"` // 1-5
	Count  int     `json:"count"`
	Share  float64 `json:"share"` // [0,1]
	Color  string  `json:"color"`
}

// UnitCoverageRow reports login coverage for one organizational unit.
type UnitCoverageRow struct {
	Unit        string  `json:"unit"`
	ActiveUsers int     `json:"activeUsers"` // distinct operator ids
	Logins      int     `json:"logins"`
	LastLogin   int64   `json:"lastLogin"`
	Coverage    float64 `json:"coverage"` // activeUsers / total active users, [0,1]
}

// UsageReport bundles every derived series the reporting view consumes,
// for JSON output and MCP responses.
type UsageReport struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Timeframe   Timeframe         `json:"timeframe"`
	Modules     []ModuleReportRow `json:"modules"`
	Trend       []TrendPoint      `json:"trend"`
	Segments    []SegmentTotal    `json:"segments"`
	Ratings     []RatingBucket    `json:"ratings"`
}

// LoginReport bundles login totals with per-unit coverage.
type LoginReport struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	TotalLogins int               `json:"totalLogins"`
	LastLogin   int64             `json:"lastLogin"`
	Units       []UnitCoverageRow `json:"units"`
}
