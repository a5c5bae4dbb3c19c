package core

import (
	"sort"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// UnitCoverage reports, per organizational unit, its share of the distinct
// operators seen across all units. Sorted by coverage descending with unit
// name as the tiebreaker.
func UnitCoverage(stats *schema.LoginStats) []schema.UnitCoverageRow {
	if stats == nil {
		return []schema.UnitCoverageRow{}
	}

	totalUsers := 0
	for _, unit := range stats.Units {
		if unit != nil {
			totalUsers += len(unit.Users)
		}
	}

	rows := make([]schema.UnitCoverageRow, 0, len(stats.Units))
	for name, unit := range stats.Units {
		if unit == nil {
			continue
		}
		coverage := 0.0
		if totalUsers > 0 {
			coverage = float64(len(unit.Users)) / float64(totalUsers)
		}
		rows = append(rows, schema.UnitCoverageRow{
			Unit:        name,
			ActiveUsers: len(unit.Users),
			Logins:      unit.Logins,
			LastLogin:   unit.LastLogin,
			Coverage:    coverage,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Coverage != rows[j].Coverage {
			return rows[i].Coverage > rows[j].Coverage
		}
		return rows[i].Unit < rows[j].Unit
	})
	return rows
}
