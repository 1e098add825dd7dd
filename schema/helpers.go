package schema

import (
	"math"
	"strings"
)

// SafeFloat coerces NaN and infinite values to 0 so broken upstream numbers
// never reach arithmetic or output.
func SafeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	v = SafeFloat(v)
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Round2 rounds to 2 decimals, the default precision for rate metrics.
func Round2(v float64) float64 { return Round(v, 2) }

// Round4 rounds to 4 decimals, used for depth-of-mention whose values sit
// well below 1.
func Round4(v float64) float64 { return Round(v, 4) }

// NormalizeBrand trims surrounding whitespace and collapses internal runs of
// whitespace to single spaces. Upstream scorecards occasionally carry brand
// names straight out of model output.
func NormalizeBrand(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// DedupeNames normalizes brand names and drops duplicates and empties,
// preserving first-seen order.
func DedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		n := NormalizeBrand(name)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// BrandsEqual reports whether two brand names match exactly after
// normalization.
func BrandsEqual(a, b string) bool {
	return NormalizeBrand(a) == NormalizeBrand(b)
}

// BrandsEqualFold reports whether two brand names match ignoring case.
func BrandsEqualFold(a, b string) bool {
	return strings.EqualFold(NormalizeBrand(a), NormalizeBrand(b))
}

// BrandContains reports whether one brand name contains the other,
// ignoring case. "Acme" matches "Acme Corp" and vice versa; empty names
// never match anything.
func BrandContains(a, b string) bool {
	na := strings.ToLower(NormalizeBrand(a))
	nb := strings.ToLower(NormalizeBrand(b))
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
