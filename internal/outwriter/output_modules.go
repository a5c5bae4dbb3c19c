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

// WriteModuleResults outputs per-module metrics, dispatching on the output format.
func WriteModuleResults(rows []schema.ModuleReportRow, cfg *contract.Config) error {
	fmtFloat, fmtPercent := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModuleCSV(w, rows, fmtFloat, fmtPercent)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModuleTable(w, rows, cfg, fmtFloat, fmtPercent)
		}, "Wrote table")
	}
}

// writeModuleCSV writes the per-module rows in CSV format.
func writeModuleCSV(w io.Writer, rows []schema.ModuleReportRow, fmtFloat, fmtPercent func(float64) string) error {
	header := []string{"Module", "Visits", "Active", "UsageRate", "TimeSpent", "AvgDuration", "Score", "Label", "LastVisit"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range rows {
			record := []string{
				row.ModuleID,
				strconv.Itoa(row.Visits),
				strconv.Itoa(row.Active),
				fmtPercent(row.UsageRate),
				fmtFloat(row.TimeSpent),
				fmtFloat(row.AvgDuration),
				fmtFloat(row.Score),
				contract.GetPlainLabel(row.Score),
				formatEpochMs(row.LastVisit),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeModuleTable generates and writes the human-readable table.
func writeModuleTable(w io.Writer, rows []schema.ModuleReportRow, cfg *contract.Config, fmtFloat, fmtPercent func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Module", "Visits", "Active", "Rate", "Avg Min", "Score", "Label", "Last Visit"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableModuleWidth(cfg)
	var data [][]string
	for i, row := range rows {
		label := contract.GetPlainLabel(row.Score)
		if cfg.Color {
			label = contract.GetColorLabel(row.Score)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateModuleID(row.ModuleID, maxWidth),
			strconv.Itoa(row.Visits),
			strconv.Itoa(row.Active),
			fmtPercent(row.UsageRate),
			fmtFloat(row.AvgDuration),
			fmtFloat(row.Score),
			label,
			formatEpochMs(row.LastVisit),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to populate table: %w", err)
	}
	return table.Render()
}
