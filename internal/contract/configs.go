package contract

import (
	"fmt"
	"strings"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 6
)

// Config holds the validated runtime configuration.
// Fields that require parsing (backend, timeframe, color) are set by
// ProcessAndValidate after flags, env and config file are merged.
type Config struct {
	Backend    schema.DatabaseBackend // durable store backend
	DBConnect  string                 // connection string for mysql/postgresql
	Output     schema.OutputMode      // report output format
	OutputFile string                 // optional path to write output to
	Precision  int                    // decimal precision for numeric columns
	Timeframe  schema.Timeframe       // trend window id
	Days       int                    // trend window resolved to days
	Color      bool                   // colored labels in table output
	Width      int                    // terminal width override, 0 = auto
	Watch      bool                   // re-render reports on store changes
}

// ConfigRawInput holds the raw string inputs from flags, env and config file.
// Viper unmarshals into this struct before validation.
type ConfigRawInput struct {
	Backend    string `mapstructure:"store-backend"`
	DBConnect  string `mapstructure:"store-db-connect"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Timeframe  string `mapstructure:"timeframe"`
	Color      string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`
	Watch      bool   `mapstructure:"watch"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Backend ---
	backend := schema.DatabaseBackend(strings.ToLower(input.Backend))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, or none", input.Backend)
	}
	cfg.Backend = backend
	cfg.DBConnect = input.DBConnect
	if err := ValidateDatabaseConnectionString(backend, input.DBConnect); err != nil {
		return err
	}

	// --- 2. Output ---
	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output '%s'. must be text, csv, json, or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	// --- 3. Precision ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 4. Timeframe ---
	timeframe := schema.Timeframe(strings.ToLower(input.Timeframe))
	found := false
	for _, opt := range schema.TimeframeOptions {
		if opt.ID == timeframe {
			cfg.Timeframe = opt.ID
			cfg.Days = opt.Days
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("invalid timeframe '%s'. must be 7d, 30d, or 90d", input.Timeframe)
	}

	// --- 5. Color ---
	colorOn, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.Color = colorOn

	// --- 6. Width / Watch ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width
	cfg.Watch = input.Watch

	return nil
}

// ValidateDatabaseConnectionString checks that networked backends carry a
// connection string and local backends do not require one.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires a connection string (user:pass@tcp(host:port)/dbname)")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires a connection string (host=... port=... user=... dbname=...)")
		}
	}
	return nil
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
