// Package tips provides per-category carbon reduction tips, ordered by the
// categories that contribute most to a given breakdown.
package tips

import (
	"sort"
	"strings"

	"footprint/internal/footprint"
)

// categoryTips maps breakdown categories to reduction tips.
//
//nolint:gochecknoglobals // Static lookup table.
var categoryTips = map[string][]string{
	footprint.CategoryTransport: {
		"Reduce car travel by combining errands into fewer trips",
		"Use public transport for your commute where possible",
		"Replace one short-haul flight a year with rail",
	},
	footprint.CategoryEnergy: {
		"Switch to a renewable electricity tariff",
		"Lower heating by one degree and insulate drafts",
		"Run appliances on full loads and off-peak",
	},
	footprint.CategoryFood: {
		"Swap two meat meals a week for plant-based ones",
		"Buy local, seasonal produce to cut transport emissions",
		"Plan meals to reduce food waste",
	},
	footprint.CategoryWaste: {
		"Recycle everything your council accepts",
		"Compost food scraps instead of landfilling them",
		"Prefer products with less packaging",
	},
	footprint.CategoryShopping: {
		"Repair and buy second-hand before buying new",
		"Keep electronics in service longer before upgrading",
		"Favor durable goods over fast-replacement ones",
	},
}

// ForCategory returns the tips for one category. Matching is
// case-insensitive; unknown categories return nil.
func ForCategory(category string) []string {
	return categoryTips[strings.ToLower(category)]
}

// Ranked returns categories ordered by their contribution to the breakdown,
// largest first, so callers can surface the most impactful tips first.
// Categories absent from the breakdown are omitted.
func Ranked(breakdownKg map[string]float64) []string {
	var ranked []string
	for _, c := range footprint.Categories {
		if _, ok := breakdownKg[c]; ok {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return breakdownKg[ranked[i]] > breakdownKg[ranked[j]]
	})
	return ranked
}
