package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name        string
		precision   int
		value       float64
		expFloat    string
		expPercent  string
	}{
		{
			name:       "precision 1",
			precision:  1,
			value:      0.256,
			expFloat:   "0.3",
			expPercent: "25.6%",
		},
		{
			name:       "precision 0",
			precision:  0,
			value:      0.5,
			expFloat:   "0",
			expPercent: "50%",
		},
		{
			name:       "precision 2",
			precision:  2,
			value:      1.23456,
			expFloat:   "1.23",
			expPercent: "123.46%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, fmtPercent := createFormatters(tt.precision)
			assert.Equal(t, tt.expFloat, fmtFloat(tt.value))
			assert.Equal(t, tt.expPercent, fmtPercent(tt.value))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"visits": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"visits":3}`, buf.String())
	// Indented output ends with a newline from the encoder.
	assert.Contains(t, buf.String(), "\n")
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(cw *csv.Writer) error {
		return cw.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestFormatEpochMs(t *testing.T) {
	assert.Equal(t, "-", formatEpochMs(0))
	assert.NotEqual(t, "-", formatEpochMs(1700000000000))
	assert.Len(t, formatEpochMs(1700000000000), len("2006-01-02 15:04"))
}
