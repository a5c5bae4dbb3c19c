package cmd

import (
	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/statstore"
	"github.com/spf13/cobra"
)

// exportCmd exports usage data to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export usage data to Parquet for BI tools and analytics",
	Long: `Export all stored usage data to Parquet format for use with
analytics tools.

Exports three datasets:
- Module stats  - lifetime counters per module
- Module daily  - per-day rollup buckets per module
- Login units   - per-unit login rollups

Requires: --output-file parameter, used as the prefix of the three files.

Examples:
  # Export all data
  hubstats export --output-file usage-data

  # Use with DuckDB for analysis
  hubstats export --output-file usage-data
  duckdb -c "SELECT * FROM read_parquet('usage-data.modules.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := statstore.ExecuteStatsExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export usage data", err)
		}
	},
}
