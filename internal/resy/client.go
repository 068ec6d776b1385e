package resy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dannyvin11/resy-bot/internal/domain/reservation"
	"github.com/dannyvin11/resy-bot/internal/logging"
)

const defaultBaseURL = "https://api.resy.com"
const defaultUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"

// SearchContext is the geographic context Resy's venue search wants. Values
// are passed through as strings exactly as the API expects them.
type SearchContext struct {
	Lat      string
	Lng      string
	Location string
	Radius   string
}

// Client talks to the Resy consumer API. It needs an API key and auth token
// captured from an authenticated browser session.
type Client struct {
	hc     *http.Client
	creds  reservation.Credentials
	search SearchContext
	base   string
	logger *logging.Logger
}

type Option func(*Client)

// WithBaseURL points the client at a different host. Used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.base = base }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

func New(creds reservation.Credentials, search SearchContext, logger *logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	c := &Client{
		hc:     &http.Client{Timeout: 10 * time.Second},
		creds:  creds,
		search: search,
		base:   defaultBaseURL,
		logger: logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Name() string { return "resy" }

// Ping verifies the credentials against the user endpoint.
func (c *Client) Ping(ctx context.Context) error {
	status, body, err := c.do(ctx, http.MethodGet, "/2/user", "", nil, nil)
	if err != nil {
		return &reservation.NetworkError{Op: "ping", Err: err}
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return reservation.ErrInvalidCredentials
	}
	if status >= 400 {
		var r struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &r)
		if r.Message != "" {
			return fmt.Errorf("resy ping failed: %s (status=%d)", r.Message, status)
		}
		return fmt.Errorf("resy ping failed (status=%d)", status)
	}
	return nil
}

type searchResponse struct {
	Venues []struct {
		Name    string `json:"name"`
		URLSlug string `json:"url_slug"`
		ID      struct {
			Resy json.Number `json:"resy"`
		} `json:"id"`
		Location struct {
			Neighborhood string `json:"neighborhood"`
		} `json:"location"`
	} `json:"venues"`
}

// SearchVenues searches restaurants by name within the configured area.
func (c *Client) SearchVenues(ctx context.Context, query string, date time.Time, partySize int) ([]reservation.Venue, error) {
	params := map[string]string{
		"query":      query,
		"lat":        c.search.Lat,
		"lng":        c.search.Lng,
		"location":   c.search.Location,
		"radius":     c.search.Radius,
		"day":        date.Format("2006-01-02"),
		"party_size": fmt.Sprintf("%d", partySize),
		"limit":      "25",
	}
	status, body, err := c.do(ctx, http.MethodGet, "/3/venues/search", "", params, nil)
	if err != nil {
		return nil, &reservation.NetworkError{Op: "search", Err: err}
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, reservation.ErrInvalidCredentials
	}
	if status != http.StatusOK {
		c.logger.Warn("venue search non-200", "status", status)
		return nil, fmt.Errorf("venue search failed (status=%d)", status)
	}
	var res searchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("parse venue search: %w", err)
	}
	out := make([]reservation.Venue, 0, len(res.Venues))
	for _, v := range res.Venues {
		out = append(out, reservation.Venue{
			ID:           v.ID.Resy.String(),
			Name:         v.Name,
			Slug:         v.URLSlug,
			Neighborhood: v.Location.Neighborhood,
		})
	}
	return out, nil
}

// LookupVenue resolves a resy.com url slug directly to a venue.
func (c *Client) LookupVenue(ctx context.Context, slug string) (reservation.Venue, error) {
	params := map[string]string{
		"url_slug": slug,
		"location": c.search.Location,
	}
	status, body, err := c.do(ctx, http.MethodGet, "/3/venue", "", params, nil)
	if err != nil {
		return reservation.Venue{}, &reservation.NetworkError{Op: "venue lookup", Err: err}
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return reservation.Venue{}, reservation.ErrInvalidCredentials
	}
	if status != http.StatusOK {
		return reservation.Venue{}, reservation.ErrRestaurantNotFound
	}
	var v struct {
		Name    string `json:"name"`
		URLSlug string `json:"url_slug"`
		ID      struct {
			Resy json.Number `json:"resy"`
		} `json:"id"`
		Location struct {
			Neighborhood string `json:"neighborhood"`
		} `json:"location"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return reservation.Venue{}, fmt.Errorf("parse venue: %w", err)
	}
	if v.ID.Resy.String() == "" {
		return reservation.Venue{}, reservation.ErrRestaurantNotFound
	}
	return reservation.Venue{
		ID:           v.ID.Resy.String(),
		Name:         v.Name,
		Slug:         v.URLSlug,
		Neighborhood: v.Location.Neighborhood,
	}, nil
}

type findResponse struct {
	Results struct {
		Venues []struct {
			Slots []struct {
				Date struct {
					Start string `json:"start"`
				} `json:"date"`
				Config struct {
					Type  string `json:"type"`
					Token string `json:"token"`
				} `json:"config"`
			} `json:"slots"`
		} `json:"venues"`
	} `json:"results"`
}

// FindSlots fetches bookable slots for a venue and date. Slot order is the
// API's own; callers rely on it for first-slot selection.
func (c *Client) FindSlots(ctx context.Context, venueID string, date time.Time, partySize int) ([]reservation.Slot, error) {
	params := map[string]string{
		"venue_id":   venueID,
		"day":        date.Format("2006-01-02"),
		"party_size": fmt.Sprintf("%d", partySize),
		// deprecated but still required by the endpoint
		"lat":  "0",
		"long": "0",
	}
	status, body, err := c.do(ctx, http.MethodGet, "/4/find", "", params, nil)
	if err != nil {
		return nil, &reservation.NetworkError{Op: "availability", Err: err}
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, reservation.ErrInvalidCredentials
	}
	if status != http.StatusOK {
		c.logger.Warn("availability non-200", "status", status, "venue_id", venueID)
		return nil, fmt.Errorf("availability fetch failed (status=%d)", status)
	}
	var res findResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("parse availability: %w", err)
	}
	if len(res.Results.Venues) == 0 {
		return nil, nil
	}
	raw := res.Results.Venues[0].Slots
	out := make([]reservation.Slot, 0, len(raw))
	for _, s := range raw {
		start, err := time.Parse("2006-01-02 15:04:05", s.Date.Start)
		if err != nil {
			c.logger.Warn("skipping slot with unparseable start", "start", s.Date.Start, "venue_id", venueID)
			continue
		}
		out = append(out, reservation.Slot{
			Start: start,
			Type:  s.Config.Type,
			Token: s.Config.Token,
		})
	}
	return out, nil
}

type bookRequest struct {
	ConfigID  string `json:"config_id"`
	Day       string `json:"day"`
	PartySize int    `json:"party_size"`
}

type bookResponse struct {
	ReservationID json.Number `json:"reservation_id"`
	ResyToken     string      `json:"resy_token"`
	Message       string      `json:"message"`
}

// Book commits the slot using its config token. One POST; Resy answers 201
// with the reservation id on success.
func (c *Client) Book(ctx context.Context, slot reservation.Slot, date time.Time, partySize int) (reservation.Confirmation, error) {
	payload, err := json.Marshal(bookRequest{
		ConfigID:  slot.Token,
		Day:       date.Format("2006-01-02"),
		PartySize: partySize,
	})
	if err != nil {
		return reservation.Confirmation{}, err
	}
	status, body, err := c.do(ctx, http.MethodPost, "/3/reservation", "application/json", nil, payload)
	if err != nil {
		return reservation.Confirmation{}, &reservation.NetworkError{Op: "book", Err: err}
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return reservation.Confirmation{}, reservation.ErrInvalidCredentials
	}
	var res bookResponse
	if status < 200 || status >= 300 {
		_ = json.Unmarshal(body, &res)
		c.logger.Warn("booking rejected", "status", status, "message", res.Message)
		return reservation.Confirmation{}, &reservation.BookingError{Status: status, Message: res.Message}
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return reservation.Confirmation{}, &reservation.BookingError{Status: status, Message: "malformed booking response"}
	}
	return reservation.Confirmation{
		ReservationID: res.ReservationID.String(),
		ResyToken:     res.ResyToken,
		SlotStart:     slot.Start,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, query map[string]string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Add("user-agent", defaultUA)
	req.Header.Add("origin", "https://resy.com")
	req.Header.Add("referrer", "https://resy.com")
	req.Header.Add("x-origin", "https://resy.com")
	req.Header.Add("accept", "application/json")
	req.Header.Add("cache-control", "no-cache")
	if contentType != "" {
		req.Header.Add("content-type", contentType)
	}
	req.Header.Add("authorization", fmt.Sprintf(`ResyAPI api_key="%s"`, c.creds.APIKey))
	req.Header.Add("x-resy-auth-token", c.creds.AuthToken)
	req.Header.Add("x-resy-universal-auth", c.creds.AuthToken)

	if query != nil {
		q := req.URL.Query()
		for k, v := range query {
			q.Add(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, err
	}
	return res.StatusCode, b, nil
}
