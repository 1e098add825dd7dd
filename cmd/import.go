package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/internal/metricstore"
)

// importCmd loads upstream-computed records into the store.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON scorecard export into the metric store",
	Long: `Load metric records computed by the upstream response pipeline.

The file is a JSON document with a 'records' array (one entry per scope
slice) and an optional 'selection' array of competitor names. Every record
is validated before anything is persisted; a bad record rejects the whole
file so a partial import never lands.

Records are upserted by (scope, scopeValue), so re-importing a refreshed
scorecard replaces the old slices in place.

Examples:
  # Import the latest scorecard
  brandscope import scorecard.json

  # Import into MySQL
  BRANDSCOPE_STORE_BACKEND=mysql BRANDSCOPE_STORE_DB_CONNECT="..." brandscope import scorecard.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		count, err := metricstore.ImportRecords(rootCtx, storeManager.GetMetricsStore(), args[0])
		if err != nil {
			contract.LogFatal("Failed to import records", err)
		}
		fmt.Printf("Imported %d records from %s.\n", count, args[0])
	},
}
