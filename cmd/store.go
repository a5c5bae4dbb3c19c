package cmd

import (
	"fmt"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/statstore"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the store with the loaded config
	if err := statstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize stat store: %w", err)
	}

	cfg.Backend = backend
	cfg.DBConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = statstore.GetDBFilePath()
	}

	cfg.Backend = backend
	cfg.DBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on durable store management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by reporting commands. This avoids output and
// timeframe processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the durable usage statistics store",
	Long: `Manage the durable store that holds usage and login statistics.

The store keeps whole-document JSON blobs keyed by statistic name, with a
schema version and timestamp per entry.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored data
  migrate - Run database schema migrations

Examples:
  # Check store status
  hubstats store status

  # Reset all tracking data
  hubstats store clear`,
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored usage and login data",
	Long: `Delete all usage and login statistics from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the stats table

Examples:
  # Clear SQLite store (default)
  hubstats store clear

  # Clear MySQL store (set connection string via env variable)
  HUBSTATS_STORE_BACKEND=mysql HUBSTATS_STORE_DB_CONNECT="..." hubstats store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := statstore.ClearStore(cfg.Backend, statstore.GetDBFilePath(), cfg.DBConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the usage statistics store.

Displays:
- Backend type and connection status
- Total number of stored entries
- Last and oldest entry timestamps
- Store size estimate

Examples:
  # Check store status
  hubstats store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := statstore.Manager.GetStatsStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		statstore.PrintStoreStatus(status)
	},
}

// storeMigrateCmd runs database migrations for the store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the statistics store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  hubstats store migrate

  # Migrate to specific version
  hubstats store migrate --target-version 1

  # Rollback to initial state
  hubstats store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := statstore.MigrateStore(cfg.Backend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
