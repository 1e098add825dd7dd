package core

import (
	"sort"

	"github.com/brandscope/brandscope/schema"
)

// AssignRanks computes competition ranks for one metric over a brand list
// and returns a new slice with the rank field populated. Tied values share
// a rank; the next distinct value resumes at its 1-based sorted position
// (80, 60, 60, 50 ranks as 1, 2, 2, 4). Direction comes from
// schema.HigherIsBetter; avgPosition ranks ascending, everything else
// descending. Missing or invalid values rank as 0.
//
// The input slice is never mutated, so callers can pass entries straight
// out of a shared cache.
func AssignRanks(entries []schema.BrandMetrics, metric schema.MetricKey) []schema.BrandMetrics {
	ranked := make([]schema.BrandMetrics, len(entries))
	copy(ranked, entries)
	if len(ranked) == 0 {
		return ranked
	}

	higher := schema.HigherIsBetter[metric]

	// Sort an index slice so ranks land on the entries in original order.
	order := make([]int, len(ranked))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a := schema.MetricValue(&ranked[order[i]], metric)
		b := schema.MetricValue(&ranked[order[j]], metric)
		if higher {
			return a > b
		}
		return a < b
	})

	rank := 1
	prev := schema.MetricValue(&ranked[order[0]], metric)
	for i, pos := range order {
		v := schema.MetricValue(&ranked[pos], metric)
		if i > 0 && v != prev {
			rank = i + 1
			prev = v
		}
		schema.SetRank(&ranked[pos], metric, rank)
	}
	return ranked
}

// RankAll recomputes ranks for every ranked metric and returns a new slice.
// Ranks carried in from the inputs are overwritten; they are scope-relative
// and meaningless once the brand set or scope changes.
func RankAll(entries []schema.BrandMetrics) []schema.BrandMetrics {
	ranked := entries
	for _, metric := range schema.RankedMetrics {
		ranked = AssignRanks(ranked, metric)
	}
	return ranked
}

// SortEntries returns a new slice ordered best-first by the given metric,
// honoring directionality. Used for display ordering, not for ranking.
func SortEntries(entries []schema.BrandMetrics, metric schema.MetricKey) []schema.BrandMetrics {
	sorted := make([]schema.BrandMetrics, len(entries))
	copy(sorted, entries)
	higher := schema.HigherIsBetter[metric]
	sort.SliceStable(sorted, func(i, j int) bool {
		a := schema.MetricValue(&sorted[i], metric)
		b := schema.MetricValue(&sorted[j], metric)
		if higher {
			return a > b
		}
		return a < b
	})
	return sorted
}
