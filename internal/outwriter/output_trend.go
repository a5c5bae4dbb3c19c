package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTrendResults outputs the trailing trend series, dispatching on the output format.
func WriteTrendResults(points []schema.TrendPoint, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendCSV(w, points, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(w, points, fmtFloat)
		}, "Wrote table")
	}
}

// writeTrendCSV writes the trend series in CSV format.
func writeTrendCSV(w io.Writer, points []schema.TrendPoint, fmtFloat func(float64) string) error {
	header := []string{"Date", "Label", "Visits", "ActiveUsers", "AvgDuration"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range points {
			record := []string{
				p.Date,
				p.Label,
				strconv.Itoa(p.Visits),
				strconv.Itoa(p.ActiveUsers),
				fmtFloat(p.AvgDuration),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeTrendTable generates and writes the human-readable table.
func writeTrendTable(w io.Writer, points []schema.TrendPoint, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Label", "Visits", "Active Users", "Avg Min"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range points {
		data = append(data, []string{
			p.Date,
			p.Label,
			strconv.Itoa(p.Visits),
			strconv.Itoa(p.ActiveUsers),
			fmtFloat(p.AvgDuration),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to populate table: %w", err)
	}
	return table.Render()
}
