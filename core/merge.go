package core

import (
	"strings"
	"time"

	"github.com/brandscope/brandscope/schema"
)

// rateMetrics are averaged across the scopes a brand appears in; summing
// them would push scores out of their 0-100 (or position) range.
var rateMetrics = []schema.MetricKey{
	schema.VisibilityMetric,
	schema.ShareOfVoiceMetric,
	schema.AvgPositionMetric,
	schema.DepthMetric,
	schema.CitationShareMetric,
	schema.SentimentMetric,
}

// brandAccumulator collects one brand's contributions across records.
// seen counts only the records the brand actually appeared in, so a brand
// absent from a scope does not drag its averages down.
type brandAccumulator struct {
	entry schema.BrandMetrics
	rates map[schema.MetricKey]float64
	seen  int
}

// MergeRecords merges metric records from several analytical scopes into
// one synthetic record with scope "filtered". Rate metrics are averaged
// per brand over the records the brand appeared in, count metrics and
// sentiment buckets are summed, and the owner flag is OR-ed across
// occurrences. Ranks from the inputs are discarded and recomputed over the
// merged brand list. Record totals are summed and lastCalculated is the
// latest input timestamp.
//
// An empty input returns a clone of the caller-supplied fallback record
// unchanged. The inputs are never mutated.
func MergeRecords(records []schema.MetricRecord, fallback schema.MetricRecord) schema.MetricRecord {
	if len(records) == 0 {
		return fallback.Clone()
	}

	byName := make(map[string]*brandAccumulator)
	order := make([]string, 0)
	merged := schema.MetricRecord{Scope: schema.FilteredScope}
	scopeValues := make([]string, 0, len(records))

	for _, rec := range records {
		for i := range rec.BrandMetrics {
			accumulateBrand(byName, &order, &rec.BrandMetrics[i])
		}
		merged.TotalTests += rec.TotalTests
		merged.TotalResponses += rec.TotalResponses
		if rec.ScopeValue != "" {
			scopeValues = append(scopeValues, rec.ScopeValue)
		}
	}
	merged.ScopeValue = strings.Join(scopeValues, ",")
	merged.LastCalculated = MaxLastCalculated(records)

	merged.BrandMetrics = make([]schema.BrandMetrics, 0, len(order))
	for _, name := range order {
		merged.BrandMetrics = append(merged.BrandMetrics, finalizeBrand(byName[name]))
	}
	merged.BrandMetrics = RankAll(merged.BrandMetrics)

	return merged
}

// accumulateBrand folds one source entry into the per-brand accumulator,
// keyed by brand name and preserving first-seen order.
func accumulateBrand(byName map[string]*brandAccumulator, order *[]string, src *schema.BrandMetrics) {
	acc, ok := byName[src.BrandName]
	if !ok {
		acc = &brandAccumulator{
			rates: make(map[schema.MetricKey]float64, len(rateMetrics)),
		}
		acc.entry.BrandID = src.BrandID
		acc.entry.BrandName = src.BrandName
		byName[src.BrandName] = acc
		*order = append(*order, src.BrandName)
	}

	acc.seen++
	acc.entry.IsOwner = acc.entry.IsOwner || src.IsOwner

	for _, metric := range rateMetrics {
		acc.rates[metric] += schema.MetricValue(src, metric)
	}

	acc.entry.Count1st += src.Count1st
	acc.entry.Count2nd += src.Count2nd
	acc.entry.Count3rd += src.Count3rd
	acc.entry.CountOther += src.CountOther
	acc.entry.TotalAppearances += src.TotalAppearances
	acc.entry.TotalMentions += src.TotalMentions
	acc.entry.BrandCitationsTotal += src.BrandCitationsTotal
	acc.entry.EarnedCitationsTotal += src.EarnedCitationsTotal
	acc.entry.SocialCitationsTotal += src.SocialCitationsTotal
	acc.entry.TotalCitations += src.TotalCitations
	acc.entry.Sentiment.Positive += src.Sentiment.Positive
	acc.entry.Sentiment.Neutral += src.Sentiment.Neutral
	acc.entry.Sentiment.Negative += src.Sentiment.Negative
	acc.entry.Sentiment.Mixed += src.Sentiment.Mixed
}

// finalizeBrand averages the accumulated rate metrics over the number of
// records the brand appeared in. Depth of mention keeps four decimals
// because its values sit well below 1; other rates keep two.
func finalizeBrand(acc *brandAccumulator) schema.BrandMetrics {
	entry := acc.entry
	for _, metric := range rateMetrics {
		avg := acc.rates[metric] / float64(acc.seen)
		if metric == schema.DepthMetric {
			avg = schema.Round4(avg)
		} else {
			avg = schema.Round2(avg)
		}
		schema.SetMetricValue(&entry, metric, avg)
	}
	return entry
}

// MaxLastCalculated returns the newest lastCalculated timestamp across
// records. The zero time is returned for an empty input.
func MaxLastCalculated(records []schema.MetricRecord) time.Time {
	var latest time.Time
	for _, rec := range records {
		if rec.LastCalculated.After(latest) {
			latest = rec.LastCalculated
		}
	}
	return latest
}
