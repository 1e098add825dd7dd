package core

import (
	"github.com/brandscope/brandscope/schema"
)

// FilterBrands narrows a record's brand list to the owner plus an explicit
// competitor selection, returning a new slice. The owner entry is always
// retained, even when the selection excludes it by name.
//
// Policy for an empty selection is an explicit parameter because callers
// legitimately disagree: the report view treats "nothing selected" as
// "show everyone" while an embedded widget may want owner-only.
func FilterBrands(record schema.MetricRecord, ownerName string, allowed map[string]struct{}, emptySelectionMeansAll bool) []schema.BrandMetrics {
	entries := record.BrandMetrics
	if len(entries) == 0 {
		return nil
	}

	if len(allowed) == 0 && emptySelectionMeansAll {
		all := make([]schema.BrandMetrics, len(entries))
		copy(all, entries)
		return all
	}

	ownerIdx := OwnerIndex(entries, ownerName)

	kept := make([]schema.BrandMetrics, 0, len(entries))
	for i := range entries {
		_, selected := allowed[entries[i].BrandName]
		if entries[i].IsOwner || i == ownerIdx || selected {
			kept = append(kept, entries[i])
		}
	}

	// Empty result with a resolvable owner can only happen through a
	// mismatched selection; the owner alone is still shown.
	if len(kept) == 0 && ownerIdx >= 0 {
		kept = append(kept, entries[ownerIdx])
	}
	return kept
}

// SelectionSet converts a competitor name list to the set form FilterBrands
// consumes, normalizing names and dropping empties.
func SelectionSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if n := schema.NormalizeBrand(name); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
