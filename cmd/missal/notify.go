package main

import (
	"time"

	"github.com/jmcarver/missal/internal/config"
	"github.com/jmcarver/missal/internal/logging"
	"github.com/jmcarver/missal/internal/notify"
)

func notifySettings(n config.Notifications) notify.Settings {
	return notify.Settings{
		DailyEnabled:     n.DailyEnabled,
		DailyHour:        n.DailyHour,
		DailyMinute:      n.DailyMinute,
		RemindersEnabled: n.RemindersEnabled,
		MorningHour:      n.MorningHour,
		MorningMinute:    n.MorningMinute,
		EveningHour:      n.EveningHour,
		EveningMinute:    n.EveningMinute,
	}
}

// applyPlan records the recomputed trigger plan. The terminal client
// has no OS notification center, so the plan is written to the log
// where an external scheduler can consume it.
func applyPlan(s notify.Settings) {
	plan := notify.Recompute(s, time.Now())
	for _, id := range plan.Cancel {
		logging.Debug("notification cancelled", "id", id)
	}
	for _, tr := range plan.Arm {
		if tr.Repeats {
			logging.Info("notification armed", "id", tr.ID, "daily_at",
				time.Date(0, 1, 1, tr.Hour, tr.Minute, 0, 0, time.UTC).Format("15:04"))
		} else {
			logging.Info("notification armed", "id", tr.ID, "at", tr.At.Format(time.RFC3339))
		}
	}
}
