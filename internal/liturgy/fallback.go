package liturgy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmcarver/missal/internal/api"
	"github.com/jmcarver/missal/internal/logging"
	"github.com/jmcarver/missal/internal/model"
)

// Provenance marks where a resolved value came from. Sample data is
// structurally tagged so the UI can never mistake it for live data.
type Provenance int

const (
	// Live means the value came from the network this session.
	Live Provenance = iota
	// Cached means the value came from the local store after a fetch
	// failure; it may be stale.
	Cached
	// Sample means both network and cache came up empty and the value
	// is a bundled fixture.
	Sample
)

func (p Provenance) String() string {
	switch p {
	case Live:
		return "live"
	case Cached:
		return "cached"
	case Sample:
		return "sample"
	default:
		return "unknown"
	}
}

// ReadingsResult is what the UI receives for a readings request: always
// a renderable value, never an error.
type ReadingsResult struct {
	Readings   model.DailyReadings
	Provenance Provenance
	Notice     string // human-readable, empty for live results
}

// DayResult is the UI-facing result for a calendar-day request.
type DayResult struct {
	Day        model.LiturgicalDay
	Provenance Provenance
	Notice     string
}

// PrayersResult is the UI-facing result for a prayer-set request.
type PrayersResult struct {
	Prayers    []model.Prayer
	Provenance Provenance
	Notice     string
}

// ResolveReadings applies the fallback policy to a readings resolve:
// live value on success; otherwise the cache regardless of age; otherwise
// the bundled sample readings. The sample is a fixed generic record
// whose date will not match the request.
func (r *Resolver) ResolveReadings(ctx context.Context, date string) ReadingsResult {
	v, err := r.Readings(ctx, date)
	if err == nil {
		return ReadingsResult{Readings: v, Provenance: Live}
	}
	logging.Warn("readings resolve failed", "date", date, "error", err)

	if r.store != nil {
		if v, ok, serr := r.store.GetReadings(date); serr == nil && ok {
			return ReadingsResult{
				Readings:   v,
				Provenance: Cached,
				Notice:     userMessage(err) + " Showing previously saved readings.",
			}
		}
	}

	return ReadingsResult{
		Readings:   SampleReadings(),
		Provenance: Sample,
		Notice:     userMessage(err) + " Showing built-in sample readings.",
	}
}

// ResolveDay applies the fallback policy to a calendar-day resolve. The
// last resort is the approximate client-side season estimate rather
// than a fixed fixture, so the day at least reflects the requested date.
func (r *Resolver) ResolveDay(ctx context.Context, date string) DayResult {
	v, err := r.Day(ctx, date)
	if err == nil {
		return DayResult{Day: v, Provenance: Live}
	}
	logging.Warn("day resolve failed", "date", date, "error", err)

	if r.store != nil {
		if v, ok, serr := r.store.GetDay(date); serr == nil && ok {
			return DayResult{
				Day:        v,
				Provenance: Cached,
				Notice:     userMessage(err) + " Showing previously saved calendar data.",
			}
		}
	}

	t, perr := model.ParseDate(date)
	if perr != nil {
		t = time.Now()
	}
	return DayResult{
		Day:        ApproximateDay(t),
		Provenance: Sample,
		Notice:     userMessage(err) + " Showing an approximate season estimate.",
	}
}

// ResolvePrayers applies the fallback policy to a prayer-set resolve.
func (r *Resolver) ResolvePrayers(ctx context.Context, category string) PrayersResult {
	v, err := r.Prayers(ctx, category)
	if err == nil {
		return PrayersResult{Prayers: v, Provenance: Live}
	}
	logging.Warn("prayers resolve failed", "category", category, "error", err)

	if r.store != nil {
		if v, serr := r.store.GetPrayers(category); serr == nil && len(v) > 0 {
			return PrayersResult{
				Prayers:    v,
				Provenance: Cached,
				Notice:     userMessage(err) + " Showing previously saved prayers.",
			}
		}
	}

	return PrayersResult{
		Prayers:    SamplePrayers(),
		Provenance: Sample,
		Notice:     userMessage(err) + " Showing built-in prayers.",
	}
}

// userMessage converts an error into a short sentence for display.
func userMessage(err error) string {
	var serverErr *api.ServerError
	var decodeErr *api.DecodeError
	switch {
	case errors.Is(err, api.ErrOffline):
		return "No internet connection."
	case errors.Is(err, api.ErrTimeout):
		return "The request timed out."
	case errors.Is(err, api.ErrUnsuccessful):
		return "The server could not provide this data."
	case errors.As(err, &serverErr):
		return fmt.Sprintf("The server returned an error (%d).", serverErr.StatusCode)
	case errors.As(err, &decodeErr):
		return "Could not read the server's response."
	case errors.Is(err, context.Canceled):
		return "The request was cancelled."
	default:
		return "Something went wrong."
	}
}
