// Package liturgy resolves liturgical data for calendar dates through a
// three-layer lookup: in-memory session index, local cache store, then
// the remote API, writing fetched records back through both layers.
//
// The fallback policy in fallback.go sits on top and converts resolver
// failures into provenance-tagged results the UI can always render.
package liturgy

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jmcarver/missal/internal/logging"
	"github.com/jmcarver/missal/internal/model"
	"github.com/jmcarver/missal/internal/store"
)

// Source is the remote API surface the resolver fetches from.
// *api.Client satisfies it; tests inject mocks.
type Source interface {
	CalendarFor(ctx context.Context, date string) (model.LiturgicalDay, error)
	ReadingsFor(ctx context.Context, date string) (model.DailyReadings, error)
	PrayersByCategory(ctx context.Context, category string) ([]model.Prayer, error)
	SeasonalPrayers(ctx context.Context, season string) ([]model.Prayer, error)
}

// seasonKeys are the prayer categories served by the seasonal endpoint
// rather than the category endpoint.
var seasonKeys = map[string]bool{
	"advent":    true,
	"christmas": true,
	"lent":      true,
	"easter":    true,
}

// Resolver is the session-scoped, date-indexed lookup for liturgical
// data. The in-memory index lives for the process and is never
// persisted; the store is the durable layer underneath it.
//
// Thread-safety: all methods are safe for concurrent use. For a single
// key there is at most one outstanding remote fetch; concurrent callers
// join it instead of starting their own.
type Resolver struct {
	store  *store.Store
	source Source

	mu       sync.RWMutex
	days     map[string]model.LiturgicalDay
	readings map[string]model.DailyReadings
	prayers  map[string][]model.Prayer

	flight singleflight.Group
}

// NewResolver creates a Resolver over the given cache store and remote
// source. The store may be nil (memory plus network only), which the
// resolver treats like a cache that always misses.
func NewResolver(st *store.Store, src Source) *Resolver {
	return &Resolver{
		store:    st,
		source:   src,
		days:     make(map[string]model.LiturgicalDay),
		readings: make(map[string]model.DailyReadings),
		prayers:  make(map[string][]model.Prayer),
	}
}

// Readings resolves the Mass readings for a YYYY-MM-DD date.
// Memory hits return immediately with no I/O; store hits populate the
// memory index; otherwise one network fetch runs and is written through
// to the store and the index before being returned.
func (r *Resolver) Readings(ctx context.Context, date string) (model.DailyReadings, error) {
	r.mu.RLock()
	v, ok := r.readings[date]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	if r.store != nil {
		v, ok, err := r.store.GetReadings(date)
		if err != nil {
			logging.Warn("readings cache read failed", "date", date, "error", err)
		} else if ok {
			r.mu.Lock()
			r.readings[date] = v
			r.mu.Unlock()
			return v, nil
		}
	}

	out, err := r.fetch(ctx, "readings:"+date, func(fetchCtx context.Context) (any, error) {
		v, err := r.source.ReadingsFor(fetchCtx, date)
		if err != nil {
			return nil, err
		}
		// Write-through: persist before the caller sees the value.
		if r.store != nil {
			if err := r.store.PutReadings(v); err != nil {
				logging.Warn("readings cache write failed", "date", date, "error", err)
			}
		}
		r.mu.Lock()
		r.readings[date] = v
		r.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return model.DailyReadings{}, err
	}
	return out.(model.DailyReadings), nil
}

// Day resolves the liturgical day for a YYYY-MM-DD date, with the same
// three-layer lookup as Readings.
func (r *Resolver) Day(ctx context.Context, date string) (model.LiturgicalDay, error) {
	r.mu.RLock()
	v, ok := r.days[date]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	if r.store != nil {
		v, ok, err := r.store.GetDay(date)
		if err != nil {
			logging.Warn("day cache read failed", "date", date, "error", err)
		} else if ok {
			r.mu.Lock()
			r.days[date] = v
			r.mu.Unlock()
			return v, nil
		}
	}

	out, err := r.fetch(ctx, "day:"+date, func(fetchCtx context.Context) (any, error) {
		v, err := r.source.CalendarFor(fetchCtx, date)
		if err != nil {
			return nil, err
		}
		if r.store != nil {
			if err := r.store.PutDay(v); err != nil {
				logging.Warn("day cache write failed", "date", date, "error", err)
			}
		}
		r.mu.Lock()
		r.days[date] = v
		r.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return model.LiturgicalDay{}, err
	}
	return out.(model.LiturgicalDay), nil
}

// Prayers resolves the prayer set for a category. Season names
// ("advent", "lent", ...) route to the seasonal endpoint. Prayer sets
// follow the same memory/store/network layering keyed by category.
func (r *Resolver) Prayers(ctx context.Context, category string) ([]model.Prayer, error) {
	r.mu.RLock()
	v, ok := r.prayers[category]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	if r.store != nil {
		v, err := r.store.GetPrayers(category)
		if err != nil {
			logging.Warn("prayers cache read failed", "category", category, "error", err)
		} else if len(v) > 0 {
			r.mu.Lock()
			r.prayers[category] = v
			r.mu.Unlock()
			return v, nil
		}
	}

	out, err := r.fetch(ctx, "prayers:"+category, func(fetchCtx context.Context) (any, error) {
		var v []model.Prayer
		var err error
		if seasonKeys[category] {
			v, err = r.source.SeasonalPrayers(fetchCtx, category)
		} else {
			v, err = r.source.PrayersByCategory(fetchCtx, category)
		}
		if err != nil {
			return nil, err
		}
		if r.store != nil {
			if err := r.store.PutPrayers(category, v); err != nil {
				logging.Warn("prayers cache write failed", "category", category, "error", err)
			}
		}
		r.mu.Lock()
		r.prayers[category] = v
		r.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]model.Prayer), nil
}

// fetch runs fn under singleflight so concurrent resolution of the same
// key shares one remote request. The fetch itself runs on a detached
// context: a caller navigating away stops waiting but does not cancel
// the request out from under other joined waiters, and the completed
// result still lands in the cache.
func (r *Resolver) fetch(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	ch := r.flight.DoChan(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}
