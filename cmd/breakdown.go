package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandscope/brandscope/core"
	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/internal/outwriter"
)

// breakdownCmd prints position and sentiment percentage views.
var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show per-brand position and sentiment distributions.",
	Long: `Derive percentage distributions from each brand's raw counts.

For every brand in the configured view this reports:
- Position shares: how often the brand appeared 1st, 2nd, 3rd or lower
- Sentiment shares: positive, neutral, negative and mixed percentages

A brand with no appearances reports all-zero shares rather than an error.

Examples:
  # Distributions over the overall record
  brandscope breakdown --owner "Acme"

  # Narrowed to a persona
  brandscope breakdown --owner "Acme" --personas developer`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeBreakdown(); err != nil {
			contract.LogFatal("Cannot build breakdown", err)
		}
	},
}

func executeBreakdown() error {
	store := storeManager.GetMetricsStore()

	if err := core.ApplyStoredSelection(rootCtx, cfg, store); err != nil {
		return fmt.Errorf("failed to load competitor selection: %w", err)
	}

	record, err := core.BuildReport(rootCtx, cfg, store)
	if err != nil {
		return err
	}
	warnIfStale(record)

	return outwriter.NewOutWriter().WriteBreakdowns(core.BuildBreakdowns(record), cfg)
}
