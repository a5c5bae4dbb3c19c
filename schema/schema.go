// Package schema has configs, models and shared helpers for all parts of hubstats.
package schema

import "sort"

// HourlySlot is one lifetime-cumulative rollup slot for a single hour of the day.
// A module always carries exactly 24 slots; slot index and Hour are the same value.
type HourlySlot struct {
	Hour      int     `json:"hour"`
	Visits    int     `json:"visits"`
	Active    int     `json:"active"`
	TimeSpent float64 `json:"timeSpent"` // minutes
}

// DailyBucket is one per-calendar-day rollup for a single module.
// Buckets are unique by Date within a module and kept sorted ascending.
type DailyBucket struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Visits    int     `json:"visits"`
	Active    int     `json:"active"`
	TimeSpent float64 `json:"timeSpent"` // minutes
	LastVisit int64   `json:"lastVisit"` // epoch ms, 0 if never
}

// ModuleStatsEntry holds the lifetime counters and time-bucketed rollups
// for one portal module.
type ModuleStatsEntry struct {
	Visits      int           `json:"visits"`
	Active      int           `json:"active"`
	TimeSpent   float64       `json:"timeSpent"`   // cumulative minutes
	AvgDuration float64       `json:"avgDuration"` // timeSpent / visits, 0 when visits == 0
	LastVisit   int64         `json:"lastVisit"`   // epoch ms, 0 if never
	DailyData   []DailyBucket `json:"dailyData"`
	HourlyData  []HourlySlot  `json:"hourlyData"`
}

// ModuleStatsMap maps a module identifier to its stats entry. This is the
// in-memory shape of the whole-document blob stored under ModuleStatsKey.
type ModuleStatsMap map[string]*ModuleStatsEntry

// NewHourlyData builds the fixed 24-slot hourly template with zeroed counters.
func NewHourlyData() []HourlySlot {
	slots := make([]HourlySlot, HoursPerDay)
	for hour := range slots {
		slots[hour].Hour = hour
	}
	return slots
}

// NewModuleStatsEntry builds a zero-valued entry with the 24-slot hourly template.
func NewModuleStatsEntry() *ModuleStatsEntry {
	return &ModuleStatsEntry{
		DailyData:  []DailyBucket{},
		HourlyData: NewHourlyData(),
	}
}

// DailyBucketFor returns the bucket for the given date key, creating it when
// absent. DailyData stays sorted ascending and never exceeds MaxDailyEntries;
// the oldest dates are evicted first.
func (e *ModuleStatsEntry) DailyBucketFor(dateKey string) *DailyBucket {
	for i := range e.DailyData {
		if e.DailyData[i].Date == dateKey {
			return &e.DailyData[i]
		}
	}
	e.DailyData = append(e.DailyData, DailyBucket{Date: dateKey})
	sort.Slice(e.DailyData, func(i, j int) bool {
		return e.DailyData[i].Date < e.DailyData[j].Date
	})
	if overflow := len(e.DailyData) - MaxDailyEntries; overflow > 0 {
		e.DailyData = e.DailyData[overflow:]
	}
	for i := range e.DailyData {
		if e.DailyData[i].Date == dateKey {
			return &e.DailyData[i]
		}
	}
	// The new bucket itself was evicted; today is older than every kept date.
	return &DailyBucket{Date: dateKey}
}

// HourSlot returns the slot for the given hour of day, tolerating entries
// whose hourly template has not been normalized yet.
func (e *ModuleStatsEntry) HourSlot(hour int) *HourlySlot {
	if len(e.HourlyData) != HoursPerDay {
		e.HourlyData = NewHourlyData()
	}
	if hour < 0 || hour >= HoursPerDay {
		hour = 0
	}
	return &e.HourlyData[hour]
}

// RecomputeAvgDuration rederives AvgDuration from the lifetime counters.
// It is called whenever TimeSpent or Visits changes so the average never drifts.
func (e *ModuleStatsEntry) RecomputeAvgDuration() {
	if e.Visits > 0 {
		e.AvgDuration = e.TimeSpent / float64(e.Visits)
	} else {
		e.AvgDuration = 0
	}
}

// UserEntry tracks login activity for a single operator.
type UserEntry struct {
	Logins    int   `json:"logins"`
	LastLogin int64 `json:"lastLogin"` // epoch ms
}

// UnitEntry tracks login activity for one organizational unit.
type UnitEntry struct {
	Logins    int                   `json:"logins"`
	LastLogin int64                 `json:"lastLogin"` // epoch ms
	Users     map[string]*UserEntry `json:"users"`
}

// LoginStats is the single global login record stored under LoginStatsKey.
type LoginStats struct {
	TotalLogins int                   `json:"totalLogins"`
	LastLogin   int64                 `json:"lastLogin"` // epoch ms
	Units       map[string]*UnitEntry `json:"units"`
}

// NewLoginStats builds an empty login record.
func NewLoginStats() *LoginStats {
	return &LoginStats{Units: map[string]*UnitEntry{}}
}

// EnsureUnit returns the unit entry for the given name, creating it when absent.
func (s *LoginStats) EnsureUnit(unit string) *UnitEntry {
	if s.Units == nil {
		s.Units = map[string]*UnitEntry{}
	}
	entry, ok := s.Units[unit]
	if !ok {
		entry = &UnitEntry{Users: map[string]*UserEntry{}}
		s.Units[unit] = entry
	}
	return entry
}

// EnsureUser returns the user entry for the given operator, creating it when absent.
func (u *UnitEntry) EnsureUser(operatorID string) *UserEntry {
	if u.Users == nil {
		u.Users = map[string]*UserEntry{}
	}
	entry, ok := u.Users[operatorID]
	if !ok {
		entry = &UserEntry{}
		u.Users[operatorID] = entry
	}
	return entry
}

// LoginAttribution is returned to the caller after a login event is recorded,
// for display beside the login form.
type LoginAttribution struct {
	OperatorID string `json:"operatorId"`
	Unit       string `json:"unit"`
	Timestamp  int64  `json:"timestamp"` // epoch ms
}
