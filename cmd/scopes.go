package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/internal/outwriter"
)

// scopesCmd lists the stored metric scopes.
var scopesCmd = &cobra.Command{
	Use:   "scopes",
	Short: "List stored scopes with brand counts and freshness.",
	Long: `Summarize every stored (scope, value) slice in the metric store.

For each slice this reports the number of tracked brands, the response
volume, when the upstream pipeline last calculated it, and its age in days.

Use this to:
- See which topics, personas and platforms have data
- Spot slices the upstream pipeline has stopped refreshing
- Verify an import landed where you expected

Examples:
  # List all stored scopes
  brandscope scopes

  # Machine-readable listing
  brandscope scopes --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		infos, err := storeManager.GetMetricsStore().ListScopes(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot list scopes", err)
		}
		if err := outwriter.NewOutWriter().WriteScopes(infos, cfg); err != nil {
			contract.LogFatal("Cannot write scopes", err)
		}
	},
}
