package discovery

import (
	"sort"

	"gatherly/internal/events"
)

// Sort keys accepted by SortBy. An unknown key falls back to SortDate.
const (
	SortDate       = "date"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortPopularity = "popularity"
)

// SortBy orders a copy of the list by the given key. Ties keep their
// relative input order, so chained filter/search results stay stable.
func SortBy(list []events.Event, key string) []events.Event {
	out := make([]events.Event, len(list))
	copy(out, list)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortPopularity:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AttendeesCount > out[j].AttendeesCount
		})
	default: // SortDate
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date < out[j].Date
			}
			return out[i].Time < out[j].Time
		})
	}
	return out
}

// Query bundles the full browse pipeline: filter, then search, then sort.
type Query struct {
	Filters Filters
	Search  string
	SortKey string
}

// Apply runs the pipeline over a listing.
func (q Query) Apply(list []events.Event) []events.Event {
	result := Filter(list, q.Filters)
	result = Search(result, q.Search)
	return SortBy(result, q.SortKey)
}
