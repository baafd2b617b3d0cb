package client

import (
	"context"
	"net/http"
)

// ToggleFavorite flips an event's favorite state optimistically: the
// session cache updates immediately so the caller's UI can react, and
// rolls back to the server's truth if the request fails.
func (c *Client) ToggleFavorite(ctx context.Context, eventID string) (favorited bool, err error) {
	if c.session == nil {
		return false, &APIError{StatusCode: http.StatusUnauthorized, Message: "not logged in"}
	}

	before := c.session.FavoriteEvents()
	c.session.setFavorites(toggleID(before, eventID))

	var payload favoritePayload
	err = c.do(ctx, http.MethodPost, "/api/me/favorites/"+eventID+"/", nil, &payload)
	if err != nil {
		c.session.setFavorites(before)
		return false, err
	}

	// adopt the server's list as truth, it may differ under concurrency
	c.session.SetUser(payload.Profile)
	return payload.Favorited, nil
}

func toggleID(list []string, id string) []string {
	out := make([]string, 0, len(list)+1)
	found := false
	for _, existing := range list {
		if existing == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
