// Package api is the HTTP client for the missal REST API.
//
// The client issues plain GETs against the /api/v1 surface, classifies
// failures into the typed errors in errors.go, and performs no retries.
// Retry is a caller decision (the UI re-invokes on "try again").
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jmcarver/missal/internal/model"
)

// requestTimeout bounds every request, matching the app-wide 10 second
// budget for a screen load.
const requestTimeout = 10 * time.Second

const userAgent = "missal/1.0 (terminal client)"

// Client talks to one missal API server. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
}

// New creates a Client for the given base URL (scheme://host[:port],
// no trailing /api/v1).
func New(baseURL string) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: requestTimeout},
		// Screens fetch one record at a time; keep a small burst for
		// the calendar view paging across days.
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
	}
}

// get performs a GET against an /api/v1 endpoint and decodes the JSON
// body into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return classify(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1"+endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &ServerError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classify(err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// TodayReadings fetches the Mass readings for the server's current date.
func (c *Client) TodayReadings(ctx context.Context) (model.DailyReadings, error) {
	return c.readings(ctx, "/readings/today")
}

// ReadingsFor fetches the Mass readings for a YYYY-MM-DD date.
func (c *Client) ReadingsFor(ctx context.Context, date string) (model.DailyReadings, error) {
	return c.readings(ctx, "/readings/"+date)
}

func (c *Client) readings(ctx context.Context, endpoint string) (model.DailyReadings, error) {
	var env model.ReadingsResponse
	if err := c.get(ctx, endpoint, &env); err != nil {
		return model.DailyReadings{}, err
	}
	if !env.Success {
		return model.DailyReadings{}, ErrUnsuccessful
	}
	return env.Readings, nil
}

// TodayCalendar fetches the liturgical day for the server's current date.
func (c *Client) TodayCalendar(ctx context.Context) (model.LiturgicalDay, error) {
	return c.calendar(ctx, "/calendar/today")
}

// CalendarFor fetches the liturgical day for a YYYY-MM-DD date.
func (c *Client) CalendarFor(ctx context.Context, date string) (model.LiturgicalDay, error) {
	return c.calendar(ctx, "/calendar/"+date)
}

func (c *Client) calendar(ctx context.Context, endpoint string) (model.LiturgicalDay, error) {
	var env model.CalendarResponse
	if err := c.get(ctx, endpoint, &env); err != nil {
		return model.LiturgicalDay{}, err
	}
	if !env.Success {
		return model.LiturgicalDay{}, ErrUnsuccessful
	}
	return env.LiturgicalDay, nil
}

// CommonPrayers fetches the common prayer set.
func (c *Client) CommonPrayers(ctx context.Context) ([]model.Prayer, error) {
	return c.prayers(ctx, "/prayers/common")
}

// PrayersByCategory fetches prayers for one category.
func (c *Client) PrayersByCategory(ctx context.Context, category string) ([]model.Prayer, error) {
	if category == model.CategoryCommon {
		return c.CommonPrayers(ctx)
	}
	return c.prayers(ctx, "/prayers/category/"+category)
}

// SeasonalPrayers fetches prayers for a lowercase season key.
func (c *Client) SeasonalPrayers(ctx context.Context, season string) ([]model.Prayer, error) {
	return c.prayers(ctx, "/prayers/seasonal/"+season)
}

func (c *Client) prayers(ctx context.Context, endpoint string) ([]model.Prayer, error) {
	var env model.PrayersResponse
	if err := c.get(ctx, endpoint, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, ErrUnsuccessful
	}
	return env.Prayers, nil
}

// Health reports whether the API answers its info endpoint with 200.
// All errors are swallowed; this is a boolean probe, not an operation.
func (c *Client) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/info", nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}
