package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eysn0130/EconX-AI-Hub2/core"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/outwriter"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/statstore"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/spf13/cobra"
)

// runReport renders once, then re-renders on store changes when --watch is
// set. Watching is only available for the sqlite backend, since it relies
// on filesystem notification of the database file.
func runReport(render func() error) error {
	if err := render(); err != nil {
		return err
	}

	if !cfg.Watch {
		return nil
	}
	if cfg.Backend != schema.SQLiteBackend {
		return fmt.Errorf("--watch requires the sqlite backend (current: %s)", cfg.Backend)
	}

	stop, err := statstore.WatchDBFile(statstore.GetDBFilePath(), func() {
		if err := render(); err != nil {
			contract.LogWarn("Failed to re-render report", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to watch store: %w", err)
	}
	defer stop()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()
	return nil
}

// reportCmd groups the reporting commands.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render usage and login reports from the durable store",
	Long: `Render derived reports from the recorded usage data.

All reports are computed from a single store snapshot, so one render is
internally consistent. Use --watch with the sqlite backend to re-render
whenever another process writes to the store.

Subcommands:
  modules - Per-module visits, engagement, dwell and satisfaction
  trend   - Trailing daily trend across all modules
  hours   - Visits folded into named day parts
  ratings - Satisfaction score distribution
  logins  - Login totals and per-unit coverage

Examples:
  # Per-module dashboard
  hubstats report modules

  # 30 day trend as JSON
  hubstats report trend --timeframe 30d --output json

  # Live dashboard
  hubstats report modules --watch`,
}

// reportModulesCmd prints per-module metrics.
var reportModulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Display per-module usage metrics and satisfaction scores",
	Long: `Show the per-module dashboard: lifetime visits, sustained
engagements, usage rate, cumulative and average dwell time, plus the
derived satisfaction score and its label.

Modules are sorted by visits, highest first.

Examples:
  # Table on the terminal
  hubstats report modules

  # CSV for spreadsheets
  hubstats report modules --output csv --output-file modules.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := runReport(func() error {
			stats := core.ModuleStatsSnapshot(storeManager)
			return outwriter.WriteModuleResults(core.ModuleRows(stats), cfg)
		})
		if err != nil {
			contract.LogFatal("Cannot display module report", err)
		}
	},
}

// reportTrendCmd prints the trailing daily trend.
var reportTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Display the trailing daily usage trend",
	Long: `Show one point per day in the configured timeframe, each summing
visits, engagements and average dwell across all modules. Days without
activity appear as zero points, so the series is always continuous.

Labels follow the window size: weekday names for 7 days, month/day for a
month, year-month beyond that.

Examples:
  # Last 7 days
  hubstats report trend

  # Last quarter as JSON
  hubstats report trend --timeframe 90d --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := runReport(func() error {
			stats := core.ModuleStatsSnapshot(storeManager)
			points := core.TrendSeries(stats, cfg.Days, time.Now())
			return outwriter.WriteTrendResults(points, cfg)
		})
		if err != nil {
			contract.LogFatal("Cannot display trend report", err)
		}
	},
}

// reportHoursCmd prints the hourly day-part distribution.
var reportHoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Display visits folded into named day parts",
	Long: `Show lifetime visit totals folded into the dashboard's day parts
(overnight, morning, peaks, noon, evening, late), with each part's share
of the whole day.

Examples:
  # Day-part distribution
  hubstats report hours`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := runReport(func() error {
			stats := core.ModuleStatsSnapshot(storeManager)
			segments := core.SegmentTotals(core.HourlyTotals(stats))
			return outwriter.WriteSegmentResults(segments, cfg)
		})
		if err != nil {
			contract.LogFatal("Cannot display hourly report", err)
		}
	},
}

// reportRatingsCmd prints the satisfaction distribution.
var reportRatingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Display the satisfaction score distribution",
	Long: `Show how many modules fall into each of the five satisfaction
buckets, with each bucket's share of the visited modules.

Examples:
  # Rating distribution
  hubstats report ratings`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := runReport(func() error {
			stats := core.ModuleStatsSnapshot(storeManager)
			return outwriter.WriteRatingResults(core.RatingDistribution(stats), cfg)
		})
		if err != nil {
			contract.LogFatal("Cannot display rating report", err)
		}
	},
}

// reportLoginsCmd prints login totals and per-unit coverage.
var reportLoginsCmd = &cobra.Command{
	Use:   "logins",
	Short: "Display login totals and per-unit coverage",
	Long: `Show the deduplicated login total, last login time, and for each
organizational unit its distinct operators, login count and share of the
active user base.

Examples:
  # Login dashboard
  hubstats report logins`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := runReport(func() error {
			report := core.BuildLoginReport(storeManager, time.Now())
			return outwriter.WriteLoginResults(report, cfg)
		})
		if err != nil {
			contract.LogFatal("Cannot display login report", err)
		}
	},
}
