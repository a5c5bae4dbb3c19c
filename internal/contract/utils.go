package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Satisfaction label constants.
const (
	ExcellentValue = "Excellent" // score >= 4.5
	GoodValue      = "Good"      // score >= 3.5
	FairValue      = "Fair"      // score >= 2.5
	PoorValue      = "Poor"      // everything below
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold)
	GoodColor      = color.New(color.FgCyan)
	FairColor      = color.New(color.FgYellow)
	PoorColor      = color.New(color.FgRed)
)

// GetPlainLabel returns a plain text label for a satisfaction score.
// This is the core logic used for CSV and JSON printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 4.5:
		return ExcellentValue
	case score >= 3.5:
		return GoodValue
	case score >= 2.5:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console table output.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for stat storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".hubstats.db"
	}
	return filepath.Join(homeDir, ".hubstats.db")
}

// TruncateModuleID truncates a module id to a maximum width with ellipsis.
// Requires maxWidth > 3 so there is room for the ellipsis and content.
func TruncateModuleID(moduleID string, maxWidth int) string {
	runes := []rune(moduleID)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return moduleID
}
