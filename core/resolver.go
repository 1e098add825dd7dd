package core

import (
	"github.com/brandscope/brandscope/schema"
)

// ownerStrategy locates the owner entry in a brand list, returning its
// index or -1. Strategies are tried in order from strictest to loosest.
type ownerStrategy func(entries []schema.BrandMetrics, ownerName string) int

// ownerStrategies is the resolution chain: an upstream ownership flag wins,
// then exact name match, then case-insensitive match, then substring
// containment for records where the model shortened or extended the name.
var ownerStrategies = []ownerStrategy{
	matchOwnerFlag,
	matchExactName,
	matchFoldedName,
	matchContainedName,
}

func matchOwnerFlag(entries []schema.BrandMetrics, _ string) int {
	for i := range entries {
		if entries[i].IsOwner {
			return i
		}
	}
	return -1
}

func matchExactName(entries []schema.BrandMetrics, ownerName string) int {
	if schema.NormalizeBrand(ownerName) == "" {
		return -1
	}
	for i := range entries {
		if schema.BrandsEqual(entries[i].BrandName, ownerName) {
			return i
		}
	}
	return -1
}

func matchFoldedName(entries []schema.BrandMetrics, ownerName string) int {
	if schema.NormalizeBrand(ownerName) == "" {
		return -1
	}
	for i := range entries {
		if schema.BrandsEqualFold(entries[i].BrandName, ownerName) {
			return i
		}
	}
	return -1
}

func matchContainedName(entries []schema.BrandMetrics, ownerName string) int {
	for i := range entries {
		if schema.BrandContains(entries[i].BrandName, ownerName) {
			return i
		}
	}
	return -1
}

// OwnerIndex finds the owner entry's index via the strategy chain.
// Returns -1 when no strategy matches. Unlike ResolveOwner it has no
// first-entry fallback, so callers can distinguish "no owner present"
// from "first brand happens to be first".
func OwnerIndex(entries []schema.BrandMetrics, ownerName string) int {
	for _, match := range ownerStrategies {
		if idx := match(entries, ownerName); idx >= 0 {
			return idx
		}
	}
	return -1
}

// ResolveOwner finds the owner entry of a record. When no strategy matches
// a non-empty record, the first entry is returned as a deterministic
// fallback so downstream formatting never hard-fails on legacy records.
// The second return is false only when the record has no brands at all;
// callers must treat that as "no data", not an error.
func ResolveOwner(record schema.MetricRecord, ownerName string) (schema.BrandMetrics, bool) {
	entries := record.BrandMetrics
	if len(entries) == 0 {
		return schema.BrandMetrics{}, false
	}
	if idx := OwnerIndex(entries, ownerName); idx >= 0 {
		return entries[idx], true
	}
	return entries[0], true
}
