package schema

import (
	"fmt"
	"strings"
	"time"
)

// DateKey formats a time as the calendar-day key used by daily buckets.
func DateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// untrackedModules are portal surfaces that never count as module usage.
var untrackedModules = map[string]struct{}{
	"index":  {},
	"login":  {},
	"login2": {},
}

// ShouldTrack reports whether visits to the given module id are recorded.
func ShouldTrack(moduleID string) bool {
	_, skip := untrackedModules[moduleID]
	return !skip
}

// ModuleIDFromPath derives a module id from a portal page path, e.g.
// "/tools/case-guide.html" becomes "case-guide". An empty trailing segment
// resolves to "index".
func ModuleIDFromPath(path string) string {
	segment := path
	if i := strings.LastIndex(segment, "/"); i > -1 {
		segment = segment[i+1:]
	}
	if segment == "" {
		segment = "index.html"
	}
	moduleID := strings.TrimSuffix(strings.ToLower(segment), ".html")
	if moduleID == "" {
		return "index"
	}
	return moduleID
}

// TrendLabel formats the display label for one trend point. Short windows use
// weekday names, monthly windows use month/day, anything longer collapses to
// year-month.
func TrendLabel(date time.Time, windowDays int) string {
	switch {
	case windowDays <= 7:
		return WeekdayLabels[int(date.Weekday())]
	case windowDays <= 31:
		return fmt.Sprintf("%d/%d", int(date.Month()), date.Day())
	default:
		return date.Format("2006-01")
	}
}
