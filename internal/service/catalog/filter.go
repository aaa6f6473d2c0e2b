package catalog

import (
	"sort"
	"strings"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/samber/lo"
)

const (
	CategoryAll     = "all"
	CategoryPopular = "popular"
	CategoryNearby  = "nearby"

	popularLimit = 3
	nearbyStart  = 2
	nearbyEnd    = 5
)

// metricCategory bounds the category label on venue query metrics: any
// free-form value counts as a type filter.
func metricCategory(category string) string {
	switch c := strings.ToLower(strings.TrimSpace(category)); c {
	case "", CategoryAll:
		return CategoryAll
	case CategoryPopular, CategoryNearby:
		return c
	default:
		return "type"
	}
}

// FilterVenues applies the text search first, then the category. The input
// slice is not modified.
func FilterVenues(venues []domain.Venue, query, category string) []domain.Venue {
	filtered := append([]domain.Venue{}, venues...)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered = lo.Filter(filtered, func(v domain.Venue, _ int) bool {
			return strings.Contains(strings.ToLower(v.Name), q) ||
				strings.Contains(strings.ToLower(v.Location), q) ||
				strings.Contains(strings.ToLower(v.Type), q)
		})
	}

	switch category = strings.TrimSpace(category); strings.ToLower(category) {
	case "", CategoryAll:
		return filtered
	case CategoryPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
		return filtered[:min(popularLimit, len(filtered))]
	case CategoryNearby:
		// Fixed positional window until venues carry coordinates.
		start := min(nearbyStart, len(filtered))
		end := min(nearbyEnd, len(filtered))
		return filtered[start:end]
	default:
		return lo.Filter(filtered, func(v domain.Venue, _ int) bool {
			return strings.EqualFold(v.Type, category)
		})
	}
}
