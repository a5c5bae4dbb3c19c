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

// WriteLoginResults outputs the login report with per-unit coverage,
// dispatching on the output format.
func WriteLoginResults(report *schema.LoginReport, cfg *contract.Config) error {
	_, fmtPercent := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLoginCSV(w, report, fmtPercent)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLoginTable(w, report, fmtPercent)
		}, "Wrote table")
	}
}

// writeLoginCSV writes per-unit coverage rows in CSV format.
func writeLoginCSV(w io.Writer, report *schema.LoginReport, fmtPercent func(float64) string) error {
	header := []string{"Unit", "ActiveUsers", "Logins", "Coverage", "LastLogin"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, u := range report.Units {
			record := []string{
				u.Unit,
				strconv.Itoa(u.ActiveUsers),
				strconv.Itoa(u.Logins),
				fmtPercent(u.Coverage),
				formatEpochMs(u.LastLogin),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeLoginTable generates and writes the human-readable table with a
// summary line above it.
func writeLoginTable(w io.Writer, report *schema.LoginReport, fmtPercent func(float64) string) error {
	fmt.Fprintf(w, "Total logins: %d\n", report.TotalLogins)
	fmt.Fprintf(w, "Last login:   %s\n\n", formatEpochMs(report.LastLogin))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Unit", "Active Users", "Logins", "Coverage", "Last Login"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, u := range report.Units {
		data = append(data, []string{
			u.Unit,
			strconv.Itoa(u.ActiveUsers),
			strconv.Itoa(u.Logins),
			fmtPercent(u.Coverage),
			formatEpochMs(u.LastLogin),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to populate table: %w", err)
	}
	return table.Render()
}
