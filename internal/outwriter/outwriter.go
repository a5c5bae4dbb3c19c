// Package outwriter has output and writer logic for the usage reports.
package outwriter

import (
	"github.com/Eysn0130/EconX-AI-Hub2/internal/contract"
	"github.com/Eysn0130/EconX-AI-Hub2/schema"
)

// OutWriter provides a unified interface for all report output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteModules prints per-module metrics using the configured output format.
func (ow *OutWriter) WriteModules(rows []schema.ModuleReportRow, cfg *contract.Config) error {
	return WriteModuleResults(rows, cfg)
}

// WriteTrend prints the trailing trend series using the configured output format.
func (ow *OutWriter) WriteTrend(points []schema.TrendPoint, cfg *contract.Config) error {
	return WriteTrendResults(points, cfg)
}

// WriteSegments prints the hourly day-part distribution using the configured output format.
func (ow *OutWriter) WriteSegments(segments []schema.SegmentTotal, cfg *contract.Config) error {
	return WriteSegmentResults(segments, cfg)
}

// WriteRatings prints the satisfaction buckets using the configured output format.
func (ow *OutWriter) WriteRatings(buckets []schema.RatingBucket, cfg *contract.Config) error {
	return WriteRatingResults(buckets, cfg)
}

// WriteLogins prints login totals and unit coverage using the configured output format.
func (ow *OutWriter) WriteLogins(report *schema.LoginReport, cfg *contract.Config) error {
	return WriteLoginResults(report, cfg)
}
