package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/internal/metricstore"
	"github.com/brandscope/brandscope/schema"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	// Initialize the store with the loaded config
	mgr, err := metricstore.InitStoreManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	storeManager = mgr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on metric store management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by report commands. This avoids report flag
// validation for simple maintenance operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the metric store (records and competitor selection)",
	Long: `Manage the store that holds imported brand metric records.

Brandscope persists the records computed by the upstream response pipeline
along with the saved competitor selection. Reports read from this store.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show store statistics and connection info
  select  - Replace the saved competitor selection
  export  - Export records to Parquet for analytics
  clear   - Remove all stored data
  migrate - Run database schema migrations

Examples:
  # Check store status
  brandscope store status

  # Export for analysis in pandas/DuckDB
  brandscope store export --output-file metrics.parquet`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the metric store.

Displays:
- Backend type and connection status
- Number of stored records and selected competitors
- Most recent calculation timestamp across all records
- Database table sizes

Examples:
  # Check store status
  brandscope store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := storeManager.GetMetricsStore().GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		metricstore.PrintStoreStatus(status)
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored records and the competitor selection",
	Long: `Delete all metric records and the saved competitor selection.

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Reimporting a full scorecard from scratch
- The upstream pipeline changed its brand identity rules
- Testing import behavior

Examples:
  # Export before clearing
  brandscope store export --output-file backup.parquet
  brandscope store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := storeManager.GetMetricsStore().Clear(rootCtx); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeSelectCmd replaces the saved competitor selection.
var storeSelectCmd = &cobra.Command{
	Use:   "select [brand ...]",
	Short: "Replace the saved competitor selection",
	Long: `Persist the competitor brands reports should focus on.

The saved selection applies whenever a report runs without an explicit
--brands flag. Passing no brands clears the selection, which restores the
configured empty-selection behavior.

Examples:
  # Track two competitors
  brandscope store select "Globex" "Initech"

  # Clear the selection
  brandscope store select`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := storeManager.GetMetricsStore().SaveSelection(rootCtx, args); err != nil {
			contract.LogFatal("Failed to save selection", err)
		}
		fmt.Printf("Saved selection of %d brands.\n", len(args))
	},
}

// storeExportCmd exports stored records to Parquet files.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records to Parquet for BI tools and analytics",
	Long: `Export every stored metric record to Parquet format.

Each record fans out to one row per brand, carrying all rate metrics,
competition ranks, raw counts and sentiment buckets.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  brandscope store export --output-file metrics.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('metrics.parquet') LIMIT 10"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := metricstore.ExportStore(rootCtx, storeManager.GetMetricsStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export store data", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the metric store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the metric store.

Migrations allow:
- Upgrading to new schema versions when Brandscope is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  brandscope store migrate

  # Migrate to specific version
  brandscope store migrate --target-version 1

  # Rollback to initial state
  brandscope store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := metricstore.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
