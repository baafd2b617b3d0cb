package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	kind := "success"
	if status >= 400 {
		kind = "error"
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      kind,
		"status_code": status,
		"message":     message,
		"data":        data,
	})
}

func TestLoginOpensSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "asha@example.com", body["email"])

		respond(w, http.StatusOK, "Login successful", authPayload{
			Access:  "access-token",
			Refresh: "refresh-token",
			User: UserProfile{
				ID:             "user-1",
				Email:          "asha@example.com",
				FullName:       "Asha Verma",
				FavoriteEvents: []string{"event-1"},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	session, err := c.Login(context.Background(), "asha@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "access-token", session.AccessToken())
	assert.Equal(t, "Asha Verma", session.User().FullName)
	assert.True(t, session.IsFavorite("event-1"))
}

func TestLoginAcceptsTokenOnlyPayload(t *testing.T) {
	// older deployments send {token, user} without the access/refresh pair
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, "Login successful", map[string]interface{}{
			"token": "bare-token",
			"user":  UserProfile{ID: "user-1", Email: "asha@example.com"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	session, err := c.Login(context.Background(), "asha@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bare-token", session.AccessToken())
}

func TestAuthorizedRequestsCarryBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/login/" {
			respond(w, http.StatusOK, "ok", authPayload{Access: "tok", User: UserProfile{ID: "u"}})
			return
		}
		gotAuth = r.Header.Get("Authorization")
		respond(w, http.StatusOK, "ok", []Booking{})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	_, err = c.MyBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestAPIErrorSurfacesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusConflict, "seat B2 is already booked", nil)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.CreateBooking(context.Background(), "event-1", []Seat{{Row: 1, Column: 1}})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "seat B2 is already booked", apiErr.Message)
}

func TestToggleFavoriteOptimisticUpdateAndRollback(t *testing.T) {
	fail := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/login/" {
			respond(w, http.StatusOK, "ok", authPayload{
				Access: "tok",
				User:   UserProfile{ID: "u", FavoriteEvents: []string{}},
			})
			return
		}
		if fail {
			respond(w, http.StatusInternalServerError, "boom", nil)
			return
		}
		respond(w, http.StatusOK, "Event added to favorites", favoritePayload{
			Favorited: true,
			Profile:   UserProfile{ID: "u", FavoriteEvents: []string{"event-1"}},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	// failed request rolls the local cache back
	_, err = c.ToggleFavorite(context.Background(), "event-1")
	require.Error(t, err)
	assert.False(t, c.Session().IsFavorite("event-1"), "failed toggle must roll back")

	// successful request adopts the server list
	fail = false
	favorited, err := c.ToggleFavorite(context.Background(), "event-1")
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.True(t, c.Session().IsFavorite("event-1"))
}

func TestToggleFavoriteRequiresSession(t *testing.T) {
	c := New("http://localhost:0")
	_, err := c.ToggleFavorite(context.Background(), "event-1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSeatPlannerFlow(t *testing.T) {
	reserved := []Seat{{Row: 1, Column: 1}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/events/event-1/reserved-seats/":
			respond(w, http.StatusOK, "ok", ReservedSeats{
				EventID:  "event-1",
				Grid:     Grid{Rows: 8, Columns: 10},
				Reserved: reserved,
			})
		case "/api/bookings/":
			var body struct {
				EventID string `json:"event_id"`
				Seats   []Seat `json:"seats"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			respond(w, http.StatusCreated, "Booking confirmed", Booking{
				ID:         "booking-1",
				EventID:    body.EventID,
				Seats:      body.Seats,
				NumTickets: len(body.Seats),
				Status:     "CONFIRMED",
			})
		default:
			respond(w, http.StatusNotFound, "not found", nil)
		}
	}))
	defer server.Close()

	c := New(server.URL)
	planner, err := c.NewSeatPlanner(context.Background(), "event-1")
	require.NoError(t, err)

	// reserved seat is a no-op
	picked, err := planner.Toggle(Seat{Row: 1, Column: 1})
	require.NoError(t, err)
	assert.False(t, picked)
	assert.Empty(t, planner.Picked())

	// free seat toggles on, off, on again
	seat := Seat{Row: 2, Column: 4}
	picked, _ = planner.Toggle(seat)
	assert.True(t, picked)
	picked, _ = planner.Toggle(seat)
	assert.False(t, picked)
	picked, _ = planner.Toggle(seat)
	assert.True(t, picked)

	// out of bounds errors
	_, err = planner.Toggle(Seat{Row: 9, Column: 1})
	assert.ErrorIs(t, err, ErrSeatOutsideGrid)

	// a refresh that reserves our pick drops it
	reserved = append(reserved, seat)
	lost, err := planner.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Seat{seat}, lost)
	assert.Empty(t, planner.Picked())

	// pick two free seats and book them
	planner.Toggle(Seat{Row: 3, Column: 1})
	planner.Toggle(Seat{Row: 3, Column: 2})
	booking, err := planner.Book(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, booking.NumTickets)
	assert.Empty(t, planner.Picked(), "picks clear after booking")
}

func TestPlannerTotalPrice(t *testing.T) {
	planner := &SeatPlanner{
		grid:     Grid{Rows: 8, Columns: 10},
		reserved: map[Seat]struct{}{},
		picked: map[Seat]struct{}{
			{Row: 1, Column: 1}: {},
			{Row: 1, Column: 2}: {},
			{Row: 1, Column: 3}: {},
		},
	}

	assert.InDelta(t, 59.97, planner.TotalPrice(&Event{TicketType: "Paid", Price: 19.99}), 1e-9)
	assert.Zero(t, planner.TotalPrice(&Event{TicketType: "Free", Price: 49.99}))
}

func TestUploadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(4<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "poster.png", header.Filename)

		respond(w, http.StatusCreated, "Image uploaded successfully", map[string]string{
			"file_url": "/media/abc123.png",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	url, err := c.UploadFile(context.Background(), "poster.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/media/abc123.png", url)
}

func TestSearchEventsEncodesParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		respond(w, http.StatusOK, "ok", SearchResult{Count: 0, Results: []Event{}})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.SearchEvents(context.Background(), SearchParams{
		Query:    "indie",
		Category: "Music",
		MaxPrice: 80,
		City:     "Mumbai",
		Sort:     "price-low",
	})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "q=indie")
	assert.Contains(t, gotQuery, "category=Music")
	assert.Contains(t, gotQuery, "max_price=80.00")
	assert.Contains(t, gotQuery, "city=Mumbai")
	assert.Contains(t, gotQuery, "sort=price-low")
}
