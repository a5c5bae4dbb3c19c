// Package cmd defines the command-line interface for hubstats.
package cmd

import (
	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the record subcommands to the parent record command
	recordCmd.AddCommand(recordVisitCmd)
	recordCmd.AddCommand(recordActiveCmd)
	recordCmd.AddCommand(recordTimeCmd)
	recordCmd.AddCommand(recordLoginCmd)

	// Add the report subcommands to the parent report command
	reportCmd.AddCommand(reportModulesCmd)
	reportCmd.AddCommand(reportTrendCmd)
	reportCmd.AddCommand(reportHoursCmd)
	reportCmd.AddCommand(reportRatingsCmd)
	reportCmd.AddCommand(reportLoginsCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().StringP("timeframe", "t", string(schema.Week), "Trend window: 7d or 30d or 90d")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.PersistentFlags().Bool("watch", false, "Re-render the report whenever the store changes (sqlite only)")
	if err := viper.BindPFlags(reportCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of recordTimeCmd to Viper
	recordTimeCmd.Flags().Duration("elapsed", 0, "Elapsed session duration (e.g., 90s, 5m30s)")
	if err := viper.BindPFlags(recordTimeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding record time flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
