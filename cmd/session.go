package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Eysn0130/EconX-AI-Hub2/core"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/spf13/cobra"
)

// sessionCmd records a full viewing session for one module.
var sessionCmd = &cobra.Command{
	Use:   "session <module-id>",
	Short: "Track a live viewing session until interrupted",
	Long: `Record a full viewing session: a visit on entry, a sustained
engagement once the session survives the dwell delay, and the elapsed time
when the session ends on Ctrl-C.

Skip-listed modules (index, login) are never tracked.

Examples:
  # Track a session; press Ctrl-C to end it
  hubstats session case-search`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		moduleID := schema.ModuleIDFromPath(args[0])
		if !schema.ShouldTrack(moduleID) {
			fmt.Printf("Module %s is not tracked.\n", moduleID)
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Tracking session for %s. Press Ctrl-C to end.\n", moduleID)
		core.RunTrackedSession(ctx, storeManager, moduleID)
		fmt.Println("Session recorded.")
	},
}
