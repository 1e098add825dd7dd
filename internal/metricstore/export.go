package metricstore

import (
	"context"
	"fmt"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/internal/parquet"
	"github.com/brandscope/brandscope/schema"
)

// ExportStore writes every stored metric record to a Parquet file, one row
// per (scope, brand).
func ExportStore(ctx context.Context, store contract.MetricsStore, outputFile string) error {
	if outputFile == "" {
		return fmt.Errorf("export requires --output-file")
	}

	infos, err := store.ListScopes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list scopes: %w", err)
	}
	if len(infos) == 0 {
		return fmt.Errorf("no records to export")
	}

	records := make([]schema.MetricRecord, 0, len(infos))
	for _, info := range infos {
		record, ok, err := store.LoadRecord(ctx, info.Scope, info.ScopeValue)
		if err != nil {
			return fmt.Errorf("failed to load record %s/%s: %w", info.Scope, info.ScopeValue, err)
		}
		if ok {
			records = append(records, record)
		}
	}

	if err := parquet.ExportRecords(records, outputFile); err != nil {
		return err
	}

	fmt.Printf("Exported %d records to %s.\n", len(records), outputFile)
	return nil
}
