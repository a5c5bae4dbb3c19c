package contract

import (
	"testing"

	"github.com/Eysn0130/EconX-AI-Hub2/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes every validation section.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Backend:   "sqlite",
		Output:    "text",
		Precision: 1,
		Timeframe: "7d",
		Color:     "yes",
	}
}

// TestProcessAndValidate tests the happy path end to end.
func TestProcessAndValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, 1, cfg.Precision)
	assert.Equal(t, schema.Week, cfg.Timeframe)
	assert.Equal(t, 7, cfg.Days)
	assert.True(t, cfg.Color)
}

// TestProcessAndValidateErrors tests each validation section's failure mode.
func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		errPart string
	}{
		{
			name:    "invalid backend",
			mutate:  func(in *ConfigRawInput) { in.Backend = "oracle" },
			errPart: "invalid store backend",
		},
		{
			name:    "mysql without connection string",
			mutate:  func(in *ConfigRawInput) { in.Backend = "mysql" },
			errPart: "requires a connection string",
		},
		{
			name:    "invalid output",
			mutate:  func(in *ConfigRawInput) { in.Output = "xml" },
			errPart: "invalid output",
		},
		{
			name:    "precision too high",
			mutate:  func(in *ConfigRawInput) { in.Precision = 7 },
			errPart: "precision must be between",
		},
		{
			name:    "negative precision",
			mutate:  func(in *ConfigRawInput) { in.Precision = -1 },
			errPart: "precision must be between",
		},
		{
			name:    "invalid timeframe",
			mutate:  func(in *ConfigRawInput) { in.Timeframe = "14d" },
			errPart: "invalid timeframe",
		},
		{
			name:    "invalid color",
			mutate:  func(in *ConfigRawInput) { in.Color = "maybe" },
			errPart: "invalid color setting",
		},
		{
			name:    "negative width",
			mutate:  func(in *ConfigRawInput) { in.Width = -5 },
			errPart: "width cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

// TestProcessAndValidateCaseInsensitive tests lowering of enum inputs.
func TestProcessAndValidateCaseInsensitive(t *testing.T) {
	input := validInput()
	input.Backend = "SQLite"
	input.Output = "JSON"
	input.Timeframe = "30D"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, 30, cfg.Days)
}

// TestParseBoolString tests all accepted spellings.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "YES", "True"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "false", "0", "NO"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}
	_, err := ParseBoolString("on")
	assert.Error(t, err)
}

// TestValidateDatabaseConnectionString tests per-backend requirements.
func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/stats"))
}
