package discovery

import (
	"testing"

	"gatherly/internal/events"
)

func sampleEvents() []events.Event {
	return []events.Event{
		{Title: "Indie Nights Live", Category: "Music", City: "Mumbai", Date: "2026-10-14", Price: 49.99},
		{Title: "Go Meetup", Category: "Tech", City: "Bengaluru", Date: "2026-09-20", Price: 0},
		{Title: "Street Food Festival", Category: "Food", City: "Mumbai", Date: "2026-10-14", Price: 15},
		{Title: "Jazz at the Docks", Category: "Music", City: "New Mumbai", Date: "2026-11-02", Price: 120},
	}
}

func titles(list []events.Event) []string {
	out := make([]string, len(list))
	for i, ev := range list {
		out[i] = ev.Title
	}
	return out
}

func assertTitles(t *testing.T, got []events.Event, want ...string) {
	t.Helper()
	gotTitles := titles(got)
	if len(gotTitles) != len(want) {
		t.Fatalf("got %v, want %v", gotTitles, want)
	}
	for i := range want {
		if gotTitles[i] != want[i] {
			t.Fatalf("got %v, want %v", gotTitles, want)
		}
	}
}

func TestFilterCategory(t *testing.T) {
	list := sampleEvents()

	assertTitles(t, Filter(list, Filters{Category: "Music"}),
		"Indie Nights Live", "Jazz at the Docks")

	// "All" and empty behave as no filter
	if got := Filter(list, Filters{Category: "All"}); len(got) != len(list) {
		t.Fatalf("category All filtered to %d events, want %d", len(got), len(list))
	}
	if got := Filter(list, Filters{}); len(got) != len(list) {
		t.Fatalf("empty filters filtered to %d events, want %d", len(got), len(list))
	}
}

func TestFilterMaxPrice(t *testing.T) {
	list := sampleEvents()

	tests := []struct {
		name     string
		maxPrice float64
		want     []string
	}{
		{"below cap applies", 20, []string{"Go Meetup", "Street Food Festival"}},
		{"free events always pass", 0.01, []string{"Go Meetup"}},
		{"at cap disables filter", PriceCap, []string{"Indie Nights Live", "Go Meetup", "Street Food Festival", "Jazz at the Docks"}},
		{"above cap disables filter", PriceCap + 100, []string{"Indie Nights Live", "Go Meetup", "Street Food Festival", "Jazz at the Docks"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTitles(t, Filter(list, Filters{MaxPrice: tt.maxPrice}), tt.want...)
		})
	}
}

func TestFilterCitySubstring(t *testing.T) {
	list := sampleEvents()

	// case-insensitive substring: "mumbai" matches both Mumbai and New Mumbai
	assertTitles(t, Filter(list, Filters{City: "mumbai"}),
		"Indie Nights Live", "Street Food Festival", "Jazz at the Docks")

	assertTitles(t, Filter(list, Filters{City: "BENGALURU"}), "Go Meetup")

	if got := Filter(list, Filters{City: "pune"}); len(got) != 0 {
		t.Fatalf("unexpected matches for pune: %v", titles(got))
	}
}

func TestFilterDateExact(t *testing.T) {
	list := sampleEvents()

	assertTitles(t, Filter(list, Filters{Date: "2026-10-14"}),
		"Indie Nights Live", "Street Food Festival")

	if got := Filter(list, Filters{Date: "2026-10-15"}); len(got) != 0 {
		t.Fatalf("unexpected matches: %v", titles(got))
	}
}

func TestFilterCombined(t *testing.T) {
	list := sampleEvents()

	got := Filter(list, Filters{
		Category: "Music",
		City:     "mumbai",
		MaxPrice: 60,
	})
	assertTitles(t, got, "Indie Nights Live")
}

func TestFilterCategoryPriceAndCityTogether(t *testing.T) {
	list := []events.Event{
		{Title: "Opera Night", Category: "Music", Price: 50, City: "Rome"},
		{Title: "Derby Finale", Category: "Sports", Price: 500, City: "Milan"},
	}

	got := Filter(list, Filters{Category: "Music", MaxPrice: 100, City: "rom"})
	assertTitles(t, got, "Opera Night")
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	list := sampleEvents()
	before := titles(list)

	Filter(list, Filters{Category: "Music"})

	for i, title := range titles(list) {
		if title != before[i] {
			t.Fatalf("input slice mutated at %d: %s != %s", i, title, before[i])
		}
	}
}
