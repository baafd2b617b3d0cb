package discovery

import (
	"testing"

	"gatherly/internal/events"
)

func sortFixtures() []events.Event {
	return []events.Event{
		{Title: "C", Date: "2026-11-02", Time: "20:00", Price: 120, AttendeesCount: 5},
		{Title: "A", Date: "2026-09-20", Time: "18:00", Price: 0, AttendeesCount: 40},
		{Title: "B", Date: "2026-10-14", Time: "19:30", Price: 49.99, AttendeesCount: 40},
		{Title: "D", Date: "2026-10-14", Time: "11:00", Price: 15, AttendeesCount: 12},
	}
}

func TestSortByDate(t *testing.T) {
	got := SortBy(sortFixtures(), SortDate)
	assertTitles(t, got, "A", "D", "B", "C")
}

func TestSortByPrice(t *testing.T) {
	assertTitles(t, SortBy(sortFixtures(), SortPriceLow), "A", "D", "B", "C")
	assertTitles(t, SortBy(sortFixtures(), SortPriceHigh), "C", "B", "D", "A")
}

func TestSortByPopularityStable(t *testing.T) {
	// A and B tie on attendees; input order must hold
	got := SortBy(sortFixtures(), SortPopularity)
	assertTitles(t, got, "A", "B", "D", "C")
}

func TestSortUnknownKeyFallsBackToDate(t *testing.T) {
	got := SortBy(sortFixtures(), "alphabetical")
	assertTitles(t, got, "A", "D", "B", "C")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	list := sortFixtures()
	SortBy(list, SortPriceHigh)
	assertTitles(t, list, "C", "A", "B", "D")
}

func TestQueryPipeline(t *testing.T) {
	list := []events.Event{
		{Title: "Indie Nights Live", Category: "Music", City: "Mumbai", Date: "2026-10-14", Price: 49.99},
		{Title: "Rock Revival", Category: "Music", City: "Mumbai", Date: "2026-09-01", Price: 80},
		{Title: "Go Meetup", Category: "Tech", City: "Bengaluru", Date: "2026-09-20", Price: 0},
	}

	got := Query{
		Filters: Filters{Category: "Music", City: "mumbai"},
		SortKey: SortPriceLow,
	}.Apply(list)

	assertTitles(t, got, "Indie Nights Live", "Rock Revival")
}
