package discovery

import (
	"strings"

	"gatherly/internal/events"
)

// Search returns events whose title, description, city, location,
// category or any tag contains the query, case-insensitively. An empty
// or whitespace-only query returns the full list unchanged.
func Search(list []events.Event, query string) []events.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	out := make([]events.Event, 0, len(list))
	for _, ev := range list {
		if eventMatchesQuery(ev, q) {
			out = append(out, ev)
		}
	}
	return out
}

func eventMatchesQuery(ev events.Event, q string) bool {
	if strings.Contains(strings.ToLower(ev.Title), q) ||
		strings.Contains(strings.ToLower(ev.Description), q) ||
		strings.Contains(strings.ToLower(ev.City), q) ||
		strings.Contains(strings.ToLower(ev.Location), q) ||
		strings.Contains(strings.ToLower(ev.Category), q) {
		return true
	}
	for _, tag := range ev.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
