// Package cmd defines the command-line interface for brandscope.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(scopesCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeSelectCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("owner", "o", "", "Owner brand name used for resolution and retention")
	rootCmd.PersistentFlags().StringP("brands", "b", "", "Comma-separated competitor selection (default: stored selection)")
	rootCmd.PersistentFlags().StringP("topics", "t", "", "Comma-separated topic filter")
	rootCmd.PersistentFlags().StringP("personas", "p", "", "Comma-separated persona filter")
	rootCmd.PersistentFlags().String("platforms", "", "Comma-separated platform filter")
	rootCmd.PersistentFlags().String("empty-selection", "yes", "Treat an empty competitor selection as all brands (yes/no)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of brands to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("sort", string(schema.VisibilityMetric), "Metric to sort by: visibilityScore, shareOfVoice, avgPosition, depthOfMention, citationShare, sentimentScore, totalMentions")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("max-age", "", "Warn when records are older than this window (e.g. '7 days', '168h')")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper. The scope filters (topics,
	// personas, platforms) live on rootCmd above: a viper key must bind to
	// exactly one flag instance, so flags shared across subcommands are
	// declared once as persistent flags instead of per command.
	reportCmd.Flags().Bool("detail", false, "Print per-brand raw counts (mentions, appearances, positions, citations)")
	reportCmd.Flags().Bool("breakdown", false, "Append position and sentiment percentage views")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
