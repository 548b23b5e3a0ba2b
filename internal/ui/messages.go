// Package ui provides the Bubble Tea TUI for the missal.
package ui

import (
	"github.com/jmcarver/missal/internal/config"
	"github.com/jmcarver/missal/internal/liturgy"
)

// ReadingsLoaded is sent when a readings resolve finishes. The result
// always carries renderable data; failures surface as its notice.
type ReadingsLoaded struct {
	Date   string
	Result liturgy.ReadingsResult
}

// DayLoaded is sent when a calendar-day resolve finishes.
type DayLoaded struct {
	Date   string
	Result liturgy.DayResult
}

// PrayersLoaded is sent when a prayer-set resolve finishes.
type PrayersLoaded struct {
	Category string
	Result   liturgy.PrayersResult
}

// FavoritesLoaded is sent with the full favorite set at startup.
type FavoritesLoaded struct {
	Names []string
	Err   error
}

// FavoriteToggled is sent after a favorite flip is persisted.
type FavoriteToggled struct {
	Name     string
	Favorite bool
	Err      error
}

// SettingsSaved is sent after a notification-settings change has been
// written and the trigger plan recomputed.
type SettingsSaved struct {
	Notifications config.Notifications
	Err           error
}

// HealthChecked is sent with the result of an API health probe.
type HealthChecked struct {
	OK bool
}
