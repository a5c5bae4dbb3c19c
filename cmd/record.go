package cmd

import (
	"fmt"

	"github.com/Eysn0130/EconX-AI-Hub2/core"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// recordCmd groups the event ingestion commands.
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record usage and login events into the durable store",
	Long: `Record a single usage or login event.

Each event updates the lifetime counters plus the daily and hourly rollups
of the target module, then persists the whole document to the store.

Subcommands:
  visit  - Count one module visit
  active - Count one sustained engagement
  time   - Add elapsed dwell time to a module
  login  - Count one operator login (deduplicated per 5 minutes)

Examples:
  # Record a visit to the case-search module
  hubstats record visit case-search

  # Record 90 seconds of dwell time
  hubstats record time case-search --elapsed 90s

  # Record a login and print its unit attribution
  hubstats record login 110203`,
}

// recordVisitCmd counts one visit for a module.
var recordVisitCmd = &cobra.Command{
	Use:   "visit <module-id>",
	Short: "Count one visit for a module",
	Long: `Increment the module's lifetime visit counter along with its daily
bucket and current hour slot, then stamp the last-visit time.

Examples:
  # Record a visit
  hubstats record visit case-search`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		core.NewRecorder(storeManager).RecordVisit(args[0])
	},
}

// recordActiveCmd counts one sustained engagement for a module.
var recordActiveCmd = &cobra.Command{
	Use:   "active <module-id>",
	Short: "Count one sustained engagement for a module",
	Long: `Increment the module's engagement counter. An engagement is a visit
that survived the dwell delay; recording one for a module that was never
visited is a no-op.

Examples:
  # Record an engagement
  hubstats record active case-search`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		core.NewRecorder(storeManager).RecordActive(args[0])
	},
}

// recordTimeCmd adds elapsed dwell time to a module.
var recordTimeCmd = &cobra.Command{
	Use:   "time <module-id>",
	Short: "Add elapsed dwell time to a module",
	Long: `Add an elapsed session duration to the module's cumulative dwell
time. Durations below 500ms are treated as noise and dropped.

Examples:
  # Record a minute and a half of dwell
  hubstats record time case-search --elapsed 90s`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		elapsed := viper.GetDuration("elapsed")
		core.NewRecorder(storeManager).RecordTimeSpent(args[0], elapsed)
	},
}

// recordLoginCmd counts one operator login.
var recordLoginCmd = &cobra.Command{
	Use:   "login <operator-id>",
	Short: "Count one operator login and print its unit attribution",
	Long: `Record a login for the given operator id. The operator's
organizational unit is resolved from the id, and repeated logins within a
five minute window refresh timestamps without inflating counters.

Examples:
  # Record a login
  hubstats record login 110203

  # Explicit unit suffix wins over prefix resolution
  hubstats record login 110203@三大队`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		attribution := core.NewRecorder(storeManager).RecordLogin(args[0])
		if attribution == nil {
			contract.LogFatal("Failed to record login", fmt.Errorf("empty operator id"))
		}
		fmt.Printf("Operator: %s\n", attribution.OperatorID)
		fmt.Printf("Unit:     %s\n", attribution.Unit)
	},
}
