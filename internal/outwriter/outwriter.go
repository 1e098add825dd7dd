// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/brandscope/brandscope/core"
	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a ranked metric record using the configured output format.
func (ow *OutWriter) WriteReport(record schema.MetricRecord, cfg *contract.Config, duration time.Duration) error {
	return WriteReportResults(record, cfg, duration)
}

// WriteBreakdowns prints derived position and sentiment percentages using
// the configured output format.
func (ow *OutWriter) WriteBreakdowns(breakdowns []core.BrandBreakdown, cfg *contract.Config) error {
	return WriteBreakdownResults(breakdowns, cfg)
}

// WriteScopes prints stored scope summaries using the configured output format.
func (ow *OutWriter) WriteScopes(infos []schema.ScopeInfo, cfg *contract.Config) error {
	return WriteScopeResults(infos, cfg)
}

// WriteMetrics prints metric definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(cfg *contract.Config) error {
	return WriteMetricDefinitions(cfg)
}
