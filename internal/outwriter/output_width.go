package outwriter

import (
	"os"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"golang.org/x/term"
)

// getMaxTableModuleWidth calculates the maximum width for module ids in table
// output based on terminal width.
func getMaxTableModuleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns, borders and padding.
	const baseWidth = 60

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
