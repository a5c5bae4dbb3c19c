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

// WriteSegmentResults outputs the hour-of-day segment totals, dispatching on the output format.
func WriteSegmentResults(segments []schema.SegmentTotal, cfg *contract.Config) error {
	fmtFloat, fmtPercent := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, segments)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSegmentCSV(w, segments, fmtFloat, fmtPercent)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSegmentTable(w, segments, fmtFloat, fmtPercent)
		}, "Wrote table")
	}
}

// writeSegmentCSV writes segment totals in CSV format.
func writeSegmentCSV(w io.Writer, segments []schema.SegmentTotal, fmtFloat, fmtPercent func(float64) string) error {
	header := []string{"Segment", "Hours", "Visits", "Active", "TimeSpent", "Share"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range segments {
			record := []string{
				s.ID,
				s.Label,
				strconv.Itoa(s.Visits),
				strconv.Itoa(s.Active),
				fmtFloat(s.TimeSpent),
				fmtPercent(s.Share),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeSegmentTable generates and writes the human-readable table.
func writeSegmentTable(w io.Writer, segments []schema.SegmentTotal, fmtFloat, fmtPercent func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Segment", "Hours", "Visits", "Active", "Minutes", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range segments {
		data = append(data, []string{
			s.ID,
			s.Label,
			strconv.Itoa(s.Visits),
			strconv.Itoa(s.Active),
			fmtFloat(s.TimeSpent),
			fmtPercent(s.Share),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to populate table: %w", err)
	}
	return table.Render()
}
