package schema

import "time"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the durable store.
	DatabaseBackend string

	// Timeframe identifies a trailing reporting window.
	Timeframe string
)

// Storage keys for the two whole-document blobs in the durable store.
const (
	ModuleStatsKey = "moduleVisitStats"
	LoginStatsKey  = "loginStats"
)

// Business rules of the event recorder and session tracker.
const (
	// ActiveDelay is the dwell time a session must survive before it counts
	// as sustained engagement.
	ActiveDelay = 10 * time.Second

	// MinTrackableDuration is the floor below which a session's elapsed time
	// is treated as noise and dropped.
	MinTrackableDuration = 500 * time.Millisecond

	// LoginDedupWindow is the sliding window within which repeated login
	// signals from one operator do not inflate counters.
	LoginDedupWindow = 5 * time.Minute

	// MaxDailyEntries caps a module's per-day rollup history.
	MaxDailyEntries = 120

	// HoursPerDay is the fixed length of the hourly rollup template.
	HoursPerDay = 24
)

// DateKeyFormat is the calendar-day key used by daily buckets.
const DateKeyFormat = "2006-01-02"

// StatSchemaVersion is the version stamped on every persisted document.
const StatSchemaVersion = 1

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All reporting timeframes supported.
const (
	Week    Timeframe = "7d" // default
	Month   Timeframe = "30d"
	Quarter Timeframe = "90d"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// TimeframeOption pairs a timeframe id with its display label and day count.
type TimeframeOption struct {
	ID    Timeframe
	Label string
	Days  int
}

// TimeframeOptions is the ordered list of reporting windows offered by the
// dashboard.
var TimeframeOptions = []TimeframeOption{
	{ID: Week, Label: "近7日", Days: 7},
	{ID: Month, Label: "近30日", Days: 30},
	{ID: Quarter, Label: "近90日", Days: 90},
}

// TimeframeDays resolves a timeframe id to its trailing day count.
// Unknown ids fall back to the weekly window.
func TimeframeDays(id Timeframe) int {
	for _, opt := range TimeframeOptions {
		if opt.ID == id {
			return opt.Days
		}
	}
	return 7
}

// HourlySegment is one contiguous named span of the day. The segments below
// cover hours 0-23 exactly once, in order.
type HourlySegment struct {
	ID    string
	Label string
	Start int // first hour, inclusive
	End   int // last hour, inclusive
}

// HourlySegments folds the 24 hour slots into the dashboard's day parts.
var HourlySegments = []HourlySegment{
	{ID: "overnight", Label: "00:00-05:59", Start: 0, End: 5},
	{ID: "morning", Label: "06:00-08:59", Start: 6, End: 8},
	{ID: "am-peak", Label: "09:00-11:59", Start: 9, End: 11},
	{ID: "noon", Label: "12:00-13:59", Start: 12, End: 13},
	{ID: "pm-peak", Label: "14:00-17:59", Start: 14, End: 17},
	{ID: "evening", Label: "18:00-20:59", Start: 18, End: 20},
	{ID: "late", Label: "21:00-23:59", Start: 21, End: 23},
}

// RatingColorScale maps a satisfaction bucket (1-5) to its dashboard color.
var RatingColorScale = map[int]string{
	1: "#ff6b6b",
	2: "#ff9f68",
	3: "#ffd166",
	4: "#43c59e",
	5: "#1f77ff",
}

// WeekdayLabels maps time.Weekday (Sunday = 0) to the portal's display names.
var WeekdayLabels = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}
