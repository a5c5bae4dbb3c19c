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

// WriteRatingResults outputs the satisfaction distribution, dispatching on the output format.
func WriteRatingResults(buckets []schema.RatingBucket, cfg *contract.Config) error {
	_, fmtPercent := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, buckets)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRatingCSV(w, buckets, fmtPercent)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRatingTable(w, buckets, fmtPercent)
		}, "Wrote table")
	}
}

// writeRatingCSV writes the satisfaction distribution in CSV format.
func writeRatingCSV(w io.Writer, buckets []schema.RatingBucket, fmtPercent func(float64) string) error {
	header := []string{"Rating", "Count", "Share", "Color"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, b := range buckets {
			record := []string{
				strconv.Itoa(b.Rating),
				strconv.Itoa(b.Count),
				fmtPercent(b.Share),
				b.Color,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeRatingTable generates and writes the human-readable table.
func writeRatingTable(w io.Writer, buckets []schema.RatingBucket, fmtPercent func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rating", "Count", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, b := range buckets {
		data = append(data, []string{
			strconv.Itoa(b.Rating),
			strconv.Itoa(b.Count),
			fmtPercent(b.Share),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to populate table: %w", err)
	}
	return table.Render()
}
