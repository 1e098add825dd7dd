package metricstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
)

// ImportFile is the shape of an upstream scorecard export: the records
// computed by the response-analysis pipeline plus an optional competitor
// selection snapshot.
type ImportFile struct {
	Records   []schema.MetricRecord `json:"records"`
	Selection []string              `json:"selection,omitempty"`
}

// ImportRecords loads an export file into the store and returns the number
// of records written. Records with an invalid scope or duplicate brand
// names are rejected before anything is persisted.
func ImportRecords(ctx context.Context, store contract.MetricsStore, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read import file: %w", err)
	}

	var file ImportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse import file: %w", err)
	}

	for i := range file.Records {
		if err := validateImportRecord(&file.Records[i]); err != nil {
			return 0, fmt.Errorf("record %d: %w", i, err)
		}
	}

	for _, record := range file.Records {
		if err := store.SaveRecord(ctx, record); err != nil {
			return 0, err
		}
	}

	if len(file.Selection) > 0 {
		if err := store.SaveSelection(ctx, file.Selection); err != nil {
			return 0, err
		}
	}

	return len(file.Records), nil
}

// validateImportRecord enforces the record invariants: a known persisted
// scope and brand-name uniqueness within the record.
func validateImportRecord(record *schema.MetricRecord) error {
	if _, ok := schema.ValidScopes[record.Scope]; !ok {
		return fmt.Errorf("invalid scope %q. must be overall, platform, topic, persona", record.Scope)
	}
	if record.Scope != schema.OverallScope && record.ScopeValue == "" {
		return fmt.Errorf("scope %s requires a scopeValue", record.Scope)
	}

	seen := make(map[string]struct{}, len(record.BrandMetrics))
	for i := range record.BrandMetrics {
		name := schema.NormalizeBrand(record.BrandMetrics[i].BrandName)
		if name == "" {
			return fmt.Errorf("brand entry %d has an empty name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate brand name %q", name)
		}
		seen[name] = struct{}{}
		record.BrandMetrics[i].BrandName = name
	}
	return nil
}
