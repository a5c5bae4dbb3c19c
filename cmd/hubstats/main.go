// main is the entry point for the hubstats CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Eysn0130/EconX-AI-Hub2/cmd"
	"github.com/Eysn0130/EconX-AI-Hub2/internal/statstore"
)

func main() {
	err := cmd.Execute()

	// Close explicitly rather than deferring, since os.Exit skips defers.
	statstore.CloseStore()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
