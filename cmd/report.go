package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brandscope/brandscope/core"
	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/internal/outwriter"
	"github.com/brandscope/brandscope/schema"
)

// reportCmd builds and prints the ranked brand report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show brands ranked by visibility in LLM answers.",
	Long: `Build the ranked brand report for the configured view.

Without filters the stored overall record is reported as-is. With topic,
persona or platform filters the matching stored records are merged into a
single synthetic view and every rank is recomputed over the merged data.

The competitor selection (--brands, or the stored selection) narrows which
brands appear; the owner brand is always retained.

Examples:
  # Overall standings
  brandscope report --owner "Acme"

  # Narrowed to two topics, ranked by share of voice
  brandscope report --owner "Acme" --topics pricing,support --sort shareOfVoice

  # Keep raw counts visible and add percentage breakdowns
  brandscope report --owner "Acme" --detail --breakdown

  # Export for analytics
  brandscope report --output parquet --output-file report.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeReport(); err != nil {
			contract.LogFatal("Cannot build report", err)
		}
	},
}

// executeReport runs the report pipeline end to end.
func executeReport() error {
	start := time.Now()
	store := storeManager.GetMetricsStore()

	if err := core.ApplyStoredSelection(rootCtx, cfg, store); err != nil {
		return fmt.Errorf("failed to load competitor selection: %w", err)
	}

	record, err := core.BuildReport(rootCtx, cfg, store)
	if err != nil {
		return err
	}

	warnIfStale(record)

	writer := outwriter.NewOutWriter()
	if err := writer.WriteReport(record, cfg, time.Since(start)); err != nil {
		return err
	}

	if cfg.Breakdown {
		return writer.WriteBreakdowns(core.BuildBreakdowns(record), cfg)
	}
	return nil
}

// warnIfStale flags reports built from records older than the configured
// staleness window. Records are upstream-computed snapshots, so an old
// lastCalculated means the pipeline has not refreshed them.
func warnIfStale(record schema.MetricRecord) {
	if cfg.MaxAge <= 0 || record.LastCalculated.IsZero() {
		return
	}
	if age := time.Since(record.LastCalculated); age > cfg.MaxAge {
		contract.LogWarn("Stale metrics", fmt.Errorf("record calculated %s ago exceeds --max-age %s", age.Round(time.Minute), cfg.MaxAge))
	}
}
