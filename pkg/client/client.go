// Package client is the Go consumer of the Gatherly HTTP API. It wraps
// authentication, event discovery, seat planning and booking behind a
// typed interface, with client-side rate limiting via golang.org/x/time.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// APIError is a non-2xx response decoded from the standard envelope.
type APIError struct {
	StatusCode int
	Message    string
	Errors     interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// envelope matches the server's response wrapper.
type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     interface{}     `json:"errors"`
}

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	session *Session
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit caps outgoing requests per second with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the current session, nil before login.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		if token := c.session.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unexpected response (%d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Errors:     env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// Register creates an account and opens a session.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (*Session, error) {
	var payload authPayload
	err := c.do(ctx, http.MethodPost, "/api/register/", map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	}, &payload)
	if err != nil {
		return nil, err
	}
	c.session = NewSession(payload.accessToken(), payload.Refresh, payload.User)
	return c.session, nil
}

// Login authenticates and opens a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var payload authPayload
	err := c.do(ctx, http.MethodPost, "/api/login/", map[string]string{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}
	c.session = NewSession(payload.accessToken(), payload.Refresh, payload.User)
	return c.session, nil
}

// RefreshTokens swaps the refresh token for a fresh pair.
func (c *Client) RefreshTokens(ctx context.Context) error {
	if c.session == nil {
		return fmt.Errorf("no active session")
	}
	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	err := c.do(ctx, http.MethodPost, "/api/token/refresh/", map[string]string{
		"refresh": c.session.RefreshToken(),
	}, &pair)
	if err != nil {
		return err
	}
	c.session.SetTokens(pair.Access, pair.Refresh)
	return nil
}

// ListEvents fetches published events, optionally narrowed by category.
func (c *Client) ListEvents(ctx context.Context, category string) ([]Event, error) {
	path := "/api/events/"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var list []Event
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetEvent fetches one event by id.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var event Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+eventID+"/", nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// SearchEvents runs the discovery pipeline server-side.
func (c *Client) SearchEvents(ctx context.Context, params SearchParams) (*SearchResult, error) {
	values := url.Values{}
	if params.Query != "" {
		values.Set("q", params.Query)
	}
	if params.Category != "" {
		values.Set("category", params.Category)
	}
	if params.MaxPrice > 0 {
		values.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', 2, 64))
	}
	if params.City != "" {
		values.Set("city", params.City)
	}
	if params.Date != "" {
		values.Set("date", params.Date)
	}
	if params.Sort != "" {
		values.Set("sort", params.Sort)
	}

	path := "/api/events/search/"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result SearchResult
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReservedSeats fetches the current reserved read model for the hall.
func (c *Client) ReservedSeats(ctx context.Context, eventID string) (*ReservedSeats, error) {
	var reserved ReservedSeats
	err := c.do(ctx, http.MethodGet, "/api/events/"+eventID+"/reserved-seats/", nil, &reserved)
	if err != nil {
		return nil, err
	}
	return &reserved, nil
}

// CreateBooking books the given seats on an event.
func (c *Client) CreateBooking(ctx context.Context, eventID string, seatPicks []Seat) (*Booking, error) {
	var booking Booking
	err := c.do(ctx, http.MethodPost, "/api/bookings/", map[string]interface{}{
		"event_id": eventID,
		"seats":    seatPicks,
	}, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// MyBookings lists the session user's bookings, newest first.
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var list []Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/get/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CancelBooking cancels a booking and frees its seats.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*Booking, error) {
	var booking Booking
	err := c.do(ctx, http.MethodPost, "/api/bookings/"+bookingID+"/cancel/", nil, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UploadFile sends an image as multipart form data and returns its
// public URL. The server enforces a 2 MB cap and an extension whitelist.
func (c *Client) UploadFile(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload/", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if c.session != nil {
		if token := c.session.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("unexpected response (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: env.Message, Errors: env.Errors}
	}

	var uploaded struct {
		FileURL string `json:"file_url"`
	}
	if err := json.Unmarshal(env.Data, &uploaded); err != nil {
		return "", fmt.Errorf("failed to decode response data: %w", err)
	}
	return uploaded.FileURL, nil
}

// Me fetches the current profile and refreshes the session snapshot.
func (c *Client) Me(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/me/", nil, &profile); err != nil {
		return nil, err
	}
	if c.session != nil {
		c.session.SetUser(profile)
	}
	return &profile, nil
}

// UpdateProfile sends a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]interface{}) (*UserProfile, error) {
	var profile UserProfile
	if err := c.do(ctx, http.MethodPut, "/api/me/", fields, &profile); err != nil {
		return nil, err
	}
	if c.session != nil {
		c.session.SetUser(profile)
	}
	return &profile, nil
}
