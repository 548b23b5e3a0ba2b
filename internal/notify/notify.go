// Package notify computes which notification triggers should be armed
// for the current settings. It is pure timing math: the caller owns the
// actual delivery mechanism, and nothing in here can fail — a downstream
// delivery problem is logged by the caller and never rolls back a
// settings change.
package notify

import (
	"fmt"
	"time"
)

// Fixed trigger identifiers. Re-arming always cancels by these IDs
// first so a settings change can never leave duplicate triggers armed.
const (
	DailyReadingID    = "daily-readings"
	MorningReminderID = "prayer-reminder-morning"
	EveningReminderID = "prayer-reminder-evening"
)

// Trigger is one notification to arm. Repeats distinguishes a recurring
// daily trigger (Hour/Minute) from a one-shot (At).
type Trigger struct {
	ID       string
	Title    string
	Body     string
	Category string

	Repeats bool
	Hour    int
	Minute  int
	At      time.Time
}

// Settings is the user configuration the scheduler computes from.
type Settings struct {
	DailyEnabled bool
	DailyHour    int
	DailyMinute  int

	RemindersEnabled bool
	MorningHour      int
	MorningMinute    int
	EveningHour      int
	EveningMinute    int
}

// DefaultSettings mirrors the app defaults: readings at 06:00,
// reminders off until enabled, morning 07:00 and evening 21:00.
func DefaultSettings() Settings {
	return Settings{
		DailyEnabled:  true,
		DailyHour:     6,
		DailyMinute:   0,
		MorningHour:   7,
		MorningMinute: 0,
		EveningHour:   21,
		EveningMinute: 0,
	}
}

// Plan is the outcome of a recompute: cancel the listed IDs first, then
// arm the triggers. Arming order is not significant.
type Plan struct {
	Cancel []string
	Arm    []Trigger
}

// feastDays is the fixed table of feast-day notifications.
var feastDays = []struct {
	Month time.Month
	Day   int
	Title string
	Body  string
}{
	{time.December, 25, "Christmas Day", "Celebrate the birth of our Lord Jesus Christ"},
	{time.January, 1, "Mary, Mother of God", "Honor the Blessed Virgin Mary"},
	{time.August, 15, "Assumption of Mary", "Celebrate Mary's assumption into heaven"},
	{time.November, 1, "All Saints Day", "Honor all the saints in heaven"},
	{time.December, 8, "Immaculate Conception", "Celebrate Mary's immaculate conception"},
}

// feastHour is the local delivery time for feast-day triggers.
const feastHour = 8

// DailyReadingTrigger returns the recurring daily-readings trigger for
// the configured time.
func DailyReadingTrigger(s Settings) Trigger {
	return Trigger{
		ID:       DailyReadingID,
		Title:    "Daily Mass Readings",
		Body:     "Today's readings are now available",
		Category: "daily-reading",
		Repeats:  true,
		Hour:     s.DailyHour,
		Minute:   s.DailyMinute,
	}
}

// FeastTriggers returns one-shot triggers for the fixed feast table,
// current year only, strictly after now. Feasts already past this year
// are skipped, not pushed to next year; the caller recomputes at year
// rollover.
func FeastTriggers(now time.Time) []Trigger {
	var triggers []Trigger
	for _, f := range feastDays {
		at := time.Date(now.Year(), f.Month, f.Day, feastHour, 0, 0, 0, now.Location())
		if !at.After(now) {
			continue
		}
		triggers = append(triggers, Trigger{
			ID:       fmt.Sprintf("feast-%d-%d", int(f.Month), f.Day),
			Title:    f.Title,
			Body:     f.Body,
			Category: "feast-day",
			At:       at,
		})
	}
	return triggers
}

// PrayerReminderTriggers returns the fixed morning/evening reminder
// pair for the configured times.
func PrayerReminderTriggers(s Settings) []Trigger {
	return []Trigger{
		{
			ID:       MorningReminderID,
			Title:    "Prayer Reminder",
			Body:     "Take a moment for prayer and reflection",
			Category: "prayer-reminder",
			Repeats:  true,
			Hour:     s.MorningHour,
			Minute:   s.MorningMinute,
		},
		{
			ID:       EveningReminderID,
			Title:    "Prayer Reminder",
			Body:     "Take a moment for prayer and reflection",
			Category: "prayer-reminder",
			Repeats:  true,
			Hour:     s.EveningHour,
			Minute:   s.EveningMinute,
		},
	}
}

// Recompute builds the full plan for a settings change: the fixed IDs
// are always cancelled so stale triggers from previous settings never
// survive, then whatever the current settings enable is re-armed.
// Feast triggers are keyed by date and re-armed idempotently.
func Recompute(s Settings, now time.Time) Plan {
	plan := Plan{
		Cancel: []string{DailyReadingID, MorningReminderID, EveningReminderID},
	}

	if s.DailyEnabled {
		plan.Arm = append(plan.Arm, DailyReadingTrigger(s))
	}
	plan.Arm = append(plan.Arm, FeastTriggers(now)...)
	if s.RemindersEnabled {
		plan.Arm = append(plan.Arm, PrayerReminderTriggers(s)...)
	}
	return plan
}
