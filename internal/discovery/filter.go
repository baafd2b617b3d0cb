// Package discovery implements the browse-side query engine: filtering,
// free-text search and ordering over event listings. All operations are
// pure functions over slices so they compose and cache cleanly.
package discovery

import (
	"strings"

	"gatherly/internal/events"
)

// PriceCap is the upper bound of the price slider. A MaxPrice at or
// above the cap means "any price" and disables the price filter.
const PriceCap = 500

// CategoryAll is the pseudo category that matches every event.
const CategoryAll = "All"

// Filters narrows a listing. Zero values disable the corresponding rule.
type Filters struct {
	Category string
	MaxPrice float64
	City     string
	Date     string // YYYY-MM-DD, exact match
}

// Filter returns the events that satisfy every active rule. The input
// order is preserved and the input slice is never mutated.
func Filter(list []events.Event, f Filters) []events.Event {
	out := make([]events.Event, 0, len(list))
	for _, ev := range list {
		if matches(ev, f) {
			out = append(out, ev)
		}
	}
	return out
}

func matches(ev events.Event, f Filters) bool {
	if f.Category != "" && f.Category != CategoryAll && ev.Category != f.Category {
		return false
	}
	// the slider parked at the cap means no price limit
	if f.MaxPrice > 0 && f.MaxPrice < PriceCap && ev.Price > f.MaxPrice {
		return false
	}
	if f.City != "" && !strings.Contains(strings.ToLower(ev.City), strings.ToLower(f.City)) {
		return false
	}
	if f.Date != "" && ev.Date != f.Date {
		return false
	}
	return true
}
