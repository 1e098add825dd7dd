package core

import (
	"context"

	"github.com/brandscope/brandscope/internal/contract"
	"github.com/brandscope/brandscope/schema"
)

// scopeSelection is one narrowed scope dimension with its selected values.
type scopeSelection struct {
	scope  schema.Scope
	values []string
}

// scopeSelections translates the config's filter lists into the scope
// dimensions that need loading.
func scopeSelections(cfg *contract.Config) []scopeSelection {
	var selections []scopeSelection
	if len(cfg.Topics) > 0 {
		selections = append(selections, scopeSelection{schema.TopicScope, cfg.Topics})
	}
	if len(cfg.Personas) > 0 {
		selections = append(selections, scopeSelection{schema.PersonaScope, cfg.Personas})
	}
	if len(cfg.Platforms) > 0 {
		selections = append(selections, scopeSelection{schema.PlatformScope, cfg.Platforms})
	}
	return selections
}

// BuildReport produces the single ranked record for the configured view.
//
// Without scope filters the stored overall record is used directly. With
// filters, the records for every selected topic, persona and platform are
// loaded and merged into one synthetic record. Either way the brand set is
// narrowed to the owner plus the competitor selection first, then ranks
// are recomputed over the final brand set.
//
// Records coming out of the reader are cloned before any transformation,
// so a caching reader can safely hand out shared records.
func BuildReport(ctx context.Context, cfg *contract.Config, reader contract.MetricsReader) (schema.MetricRecord, error) {
	allowed := SelectionSet(cfg.Brands)

	if !cfg.HasScopeFilters() {
		record, ok, err := reader.LoadRecord(ctx, schema.OverallScope, "")
		if err != nil {
			return schema.MetricRecord{}, err
		}
		if !ok {
			return schema.MetricRecord{}, ErrNoRecords
		}
		result := record.Clone()
		result.BrandMetrics = FilterBrands(result, cfg.OwnerBrand, allowed, cfg.EmptySelectionMeansAll)
		result.BrandMetrics = RankAll(result.BrandMetrics)
		return finishReport(result, cfg), nil
	}

	var records []schema.MetricRecord
	for _, sel := range scopeSelections(cfg) {
		loaded, err := reader.LoadRecords(ctx, sel.scope, sel.values)
		if err != nil {
			return schema.MetricRecord{}, err
		}
		records = append(records, loaded...)
	}

	// Trim each record's brand set before merging so ranks are computed
	// over the brands the caller will actually see.
	filtered := make([]schema.MetricRecord, 0, len(records))
	for _, record := range records {
		clone := record.Clone()
		clone.BrandMetrics = FilterBrands(clone, cfg.OwnerBrand, allowed, cfg.EmptySelectionMeansAll)
		filtered = append(filtered, clone)
	}

	fallback, err := filteredFallback(ctx, cfg, reader, allowed)
	if err != nil {
		return schema.MetricRecord{}, err
	}

	result := MergeRecords(filtered, fallback)
	return finishReport(result, cfg), nil
}

// filteredFallback builds the record returned when no stored record
// matches the scope filters: the overall record, narrowed the same way.
func filteredFallback(ctx context.Context, cfg *contract.Config, reader contract.MetricsReader, allowed map[string]struct{}) (schema.MetricRecord, error) {
	record, ok, err := reader.LoadRecord(ctx, schema.OverallScope, "")
	if err != nil {
		return schema.MetricRecord{}, err
	}
	if !ok {
		// No data anywhere; the fallback is an empty filtered record.
		return schema.MetricRecord{Scope: schema.FilteredScope}, nil
	}
	fallback := record.Clone()
	fallback.BrandMetrics = FilterBrands(fallback, cfg.OwnerBrand, allowed, cfg.EmptySelectionMeansAll)
	fallback.BrandMetrics = RankAll(fallback.BrandMetrics)
	return fallback, nil
}

// finishReport orders entries by the configured sort metric and applies
// the result limit, always keeping the owner entry visible.
func finishReport(record schema.MetricRecord, cfg *contract.Config) schema.MetricRecord {
	record.BrandMetrics = SortEntries(record.BrandMetrics, cfg.SortBy)
	record.BrandMetrics = LimitEntries(record.BrandMetrics, cfg.ResultLimit, cfg.OwnerBrand)
	return record
}

// LimitEntries truncates a brand list to the top 'limit' entries. The
// owner entry is re-appended when the cut would drop it. A limit of 0 or
// less means no limit.
func LimitEntries(entries []schema.BrandMetrics, limit int, ownerName string) []schema.BrandMetrics {
	if limit <= 0 || len(entries) <= limit {
		return entries
	}
	ownerIdx := OwnerIndex(entries, ownerName)
	limited := entries[:limit]
	if ownerIdx >= limit {
		limited = append(limited[:limit:limit], entries[ownerIdx])
	}
	return limited
}

// ApplyStoredSelection fills cfg.Brands from the persisted competitor
// selection when no explicit brand filter was given. An empty stored
// selection leaves the config untouched.
func ApplyStoredSelection(ctx context.Context, cfg *contract.Config, reader contract.SelectionReader) error {
	if len(cfg.Brands) > 0 {
		return nil
	}
	names, err := reader.LoadSelection(ctx)
	if err != nil {
		return err
	}
	if len(names) > 0 {
		cfg.Brands = names
	}
	return nil
}

// BrandBreakdown pairs a brand with the percentage views derived from its
// raw position and sentiment counts.
type BrandBreakdown struct {
	BrandName string          `json:"brandName"`
	IsOwner   bool            `json:"isOwner"`
	Positions PositionShares  `json:"positions"`
	Sentiment SentimentShares `json:"sentiment"`
}

// BuildBreakdowns derives position and sentiment percentages for every
// brand in a record, in record order.
func BuildBreakdowns(record schema.MetricRecord) []BrandBreakdown {
	breakdowns := make([]BrandBreakdown, 0, len(record.BrandMetrics))
	for _, entry := range record.BrandMetrics {
		breakdowns = append(breakdowns, BrandBreakdown{
			BrandName: entry.BrandName,
			IsOwner:   entry.IsOwner,
			Positions: PositionDistribution(entry),
			Sentiment: SentimentShare(entry),
		})
	}
	return breakdowns
}
