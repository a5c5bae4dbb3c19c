// Package parquet provides data structures and functions for exporting portal
// usage statistics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"sort"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/parquet-go/parquet-go"
)

// ModuleStatsRow is one module's lifetime counters flattened for export.
type ModuleStatsRow struct {
	// ModuleID is the portal module identifier
	ModuleID string `parquet:"module_id,snappy"`

	// Visits is the lifetime visit count
	Visits int32 `parquet:"visits,snappy"`

	// Active is the lifetime sustained-engagement count
	Active int32 `parquet:"active,snappy"`

	// TimeSpentMinutes is the cumulative dwell time in minutes
	TimeSpentMinutes float64 `parquet:"time_spent_minutes,snappy"`

	// AvgDurationMinutes is the per-visit average dwell in minutes
	AvgDurationMinutes float64 `parquet:"avg_duration_minutes,snappy"`

	// LastVisitMs is the last visit timestamp in epoch milliseconds (nullable)
	LastVisitMs *int64 `parquet:"last_visit_ms,optional,snappy"`
}

// ModuleDailyRow is one per-day rollup bucket of a single module.
type ModuleDailyRow struct {
	// ModuleID is the portal module identifier
	ModuleID string `parquet:"module_id,snappy"`

	// Date is the calendar day key (YYYY-MM-DD)
	Date string `parquet:"date,snappy"`

	// Visits is the day's visit count
	Visits int32 `parquet:"visits,snappy"`

	// Active is the day's sustained-engagement count
	Active int32 `parquet:"active,snappy"`

	// TimeSpentMinutes is the day's dwell time in minutes
	TimeSpentMinutes float64 `parquet:"time_spent_minutes,snappy"`

	// LastVisitMs is the day's last visit timestamp in epoch milliseconds (nullable)
	LastVisitMs *int64 `parquet:"last_visit_ms,optional,snappy"`
}

// LoginUnitRow is one organizational unit's login rollup.
type LoginUnitRow struct {
	// Unit is the resolved organizational unit name
	Unit string `parquet:"unit,snappy"`

	// Logins is the unit's deduplicated login count
	Logins int32 `parquet:"logins,snappy"`

	// ActiveUsers is the number of distinct operators seen for the unit
	ActiveUsers int32 `parquet:"active_users,snappy"`

	// LastLoginMs is the unit's last login timestamp in epoch milliseconds (nullable)
	LastLoginMs *int64 `parquet:"last_login_ms,optional,snappy"`
}

// WriteModuleStatsParquet writes a slice of ModuleStatsRow structs to a Parquet file.
func WriteModuleStatsParquet(data []ModuleStatsRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the ModuleStatsRow struct tags
	writer := parquet.NewGenericWriter[ModuleStatsRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteModuleDailyParquet writes a slice of ModuleDailyRow structs to a Parquet file.
func WriteModuleDailyParquet(data []ModuleDailyRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[ModuleDailyRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteLoginUnitsParquet writes a slice of LoginUnitRow structs to a Parquet file.
func WriteLoginUnitsParquet(data []LoginUnitRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[LoginUnitRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertModuleStats flattens the module stats map into export rows,
// sorted by module id for deterministic output.
func ConvertModuleStats(stats schema.ModuleStatsMap) []ModuleStatsRow {
	result := make([]ModuleStatsRow, 0, len(stats))
	for moduleID, entry := range stats {
		if entry == nil {
			continue
		}
		result = append(result, ModuleStatsRow{
			ModuleID:           moduleID,
			Visits:             int32(entry.Visits),
			Active:             int32(entry.Active),
			TimeSpentMinutes:   entry.TimeSpent,
			AvgDurationMinutes: entry.AvgDuration,
			LastVisitMs:        optionalMs(entry.LastVisit),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ModuleID < result[j].ModuleID
	})
	return result
}

// ConvertModuleDaily flattens every module's daily buckets into export rows,
// sorted by module id then date.
func ConvertModuleDaily(stats schema.ModuleStatsMap) []ModuleDailyRow {
	var result []ModuleDailyRow
	for moduleID, entry := range stats {
		if entry == nil {
			continue
		}
		for _, bucket := range entry.DailyData {
			result = append(result, ModuleDailyRow{
				ModuleID:         moduleID,
				Date:             bucket.Date,
				Visits:           int32(bucket.Visits),
				Active:           int32(bucket.Active),
				TimeSpentMinutes: bucket.TimeSpent,
				LastVisitMs:      optionalMs(bucket.LastVisit),
			})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ModuleID != result[j].ModuleID {
			return result[i].ModuleID < result[j].ModuleID
		}
		return result[i].Date < result[j].Date
	})
	return result
}

// ConvertLoginUnits flattens the login record's units into export rows,
// sorted by unit name.
func ConvertLoginUnits(stats *schema.LoginStats) []LoginUnitRow {
	if stats == nil {
		return nil
	}
	result := make([]LoginUnitRow, 0, len(stats.Units))
	for unit, entry := range stats.Units {
		if entry == nil {
			continue
		}
		result = append(result, LoginUnitRow{
			Unit:        unit,
			Logins:      int32(entry.Logins),
			ActiveUsers: int32(len(entry.Users)),
			LastLoginMs: optionalMs(entry.LastLogin),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Unit < result[j].Unit
	})
	return result
}

// optionalMs maps a zero epoch-millisecond value to a Parquet null.
func optionalMs(ms int64) *int64 {
	if ms == 0 {
		return nil
	}
	return &ms
}
