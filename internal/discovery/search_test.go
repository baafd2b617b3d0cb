package discovery

import (
	"testing"

	"gatherly/internal/events"
)

func searchFixtures() []events.Event {
	return []events.Event{
		{
			Title:       "Indie Nights Live",
			Description: "An evening of independent music.",
			Category:    "Music",
			City:        "Mumbai",
			Location:    "Phoenix Amphitheatre",
			Tags:        []string{"live", "concert"},
		},
		{
			Title:       "Go Meetup",
			Description: "Concurrency patterns and pizza.",
			Category:    "Tech",
			City:        "Bengaluru",
			Location:    "WeWork Galaxy",
			Tags:        []string{"golang", "community"},
		},
	}
}

func TestSearchFields(t *testing.T) {
	list := searchFixtures()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title", "indie", []string{"Indie Nights Live"}},
		{"description", "pizza", []string{"Go Meetup"}},
		{"city", "bengaluru", []string{"Go Meetup"}},
		{"location", "phoenix", []string{"Indie Nights Live"}},
		{"category", "tech", []string{"Go Meetup"}},
		{"tag", "golang", []string{"Go Meetup"}},
		{"case insensitive", "INDIE", []string{"Indie Nights Live"}},
		{"substring", "eetu", []string{"Go Meetup"}},
		{"no match", "opera", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTitles(t, Search(list, tt.query), tt.want...)
		})
	}
}

func TestSearchMatchesOnTagAlone(t *testing.T) {
	list := []events.Event{
		{
			Title:       "Harbour Sessions",
			Description: "An open-air evening by the docks.",
			Category:    "Art",
			City:        "Kochi",
			Location:    "Old Harbour",
			Tags:        []string{"Live Music"},
		},
	}

	// the tag is the only field containing the query
	assertTitles(t, Search(list, "music"), "Harbour Sessions")
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	list := searchFixtures()

	for _, query := range []string{"", "   ", "\t"} {
		if got := Search(list, query); len(got) != len(list) {
			t.Fatalf("query %q returned %d events, want %d", query, len(got), len(list))
		}
	}
}
