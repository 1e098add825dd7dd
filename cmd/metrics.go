package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/internal/outwriter"
)

// metricsCmd displays the formal definitions of all tracked metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display definitions and rank directionality for all metrics",
	Long: `Show the definition, kind and ranking behavior of every tracked metric.

Provides complete transparency into how brands are ranked, including:
- Whether a metric is a rate (averaged on merge) or a count (summed)
- Whether the metric carries a competition rank
- Rank directionality (higher-is-better vs lower-is-better)

No store access is performed - this is purely informational.

Examples:
  # Show the metric reference
  brandscope metrics

  # Machine-readable listing
  brandscope metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.NewOutWriter().WriteMetrics(cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
