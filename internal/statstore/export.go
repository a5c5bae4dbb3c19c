package statstore

import (
	"errors"
	"fmt"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/parquet"
)

// ExecuteStatsExport performs the actual export of usage data to Parquet files.
func ExecuteStatsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetStatsStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalEntries == 0 {
		return errors.New("no usage data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total store entries: %d\n", status.TotalEntries)

	moduleStats := NewModuleStatsRepo(store).Load()
	loginStats := NewLoginStatsRepo(store).Load()

	// Convert to Parquet format
	moduleRows := parquet.ConvertModuleStats(moduleStats)
	dailyRows := parquet.ConvertModuleDaily(moduleStats)
	unitRows := parquet.ConvertLoginUnits(loginStats)

	// Write module lifetime counters to Parquet
	moduleFile := outputFile + ".modules.parquet"
	if err := parquet.WriteModuleStatsParquet(moduleRows, moduleFile); err != nil {
		return fmt.Errorf("failed to write module stats: %w", err)
	}
	fmt.Printf("Exported %d module records to: %s\n", len(moduleRows), moduleFile)

	// Write per-day rollups to Parquet
	dailyFile := outputFile + ".module_daily.parquet"
	if err := parquet.WriteModuleDailyParquet(dailyRows, dailyFile); err != nil {
		return fmt.Errorf("failed to write daily rollups: %w", err)
	}
	fmt.Printf("Exported %d daily records to: %s\n", len(dailyRows), dailyFile)

	// Write login units to Parquet
	unitFile := outputFile + ".login_units.parquet"
	if err := parquet.WriteLoginUnitsParquet(unitRows, unitFile); err != nil {
		return fmt.Errorf("failed to write login units: %w", err)
	}
	fmt.Printf("Exported %d unit records to: %s\n", len(unitRows), unitFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
