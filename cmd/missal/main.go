package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmcarver/missal/internal/api"
	"github.com/jmcarver/missal/internal/config"
	"github.com/jmcarver/missal/internal/liturgy"
	"github.com/jmcarver/missal/internal/logging"
	"github.com/jmcarver/missal/internal/store"
	"github.com/jmcarver/missal/internal/ui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := logging.Init(); err != nil {
		log.Printf("Warning: file logging disabled: %v", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		// A broken config file is not fatal; defaults were returned.
		logging.Warn("config load failed, using defaults", "error", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	st, err := store.Open(cfg.CachePath)
	if err != nil {
		log.Fatalf("Failed to open cache database: %v", err)
	}
	defer st.Close()

	// Startup eviction keeps the cache bounded. Failure is logged and
	// ignored; stale rows just survive until the next run.
	if removed, err := st.EvictOlderThan(cfg.RetentionDays); err != nil {
		logging.Warn("cache eviction failed", "error", err)
	} else if removed > 0 {
		logging.Info("evicted expired cache entries", "count", removed)
	}

	client := api.New(cfg.APIBaseURL)
	resolver := liturgy.NewResolver(st, client)

	// Notification triggers are recomputed at startup so feast one-shots
	// roll forward and stale triggers from old settings are replaced.
	applyPlan(notifySettings(cfg.Notifications))

	cmds := ui.Commands{
		LoadReadings: func(date string) tea.Cmd {
			return func() tea.Msg {
				return ui.ReadingsLoaded{Date: date, Result: resolver.ResolveReadings(ctx, date)}
			}
		},
		LoadDay: func(date string) tea.Cmd {
			return func() tea.Msg {
				return ui.DayLoaded{Date: date, Result: resolver.ResolveDay(ctx, date)}
			}
		},
		LoadPrayers: func(category string) tea.Cmd {
			return func() tea.Msg {
				return ui.PrayersLoaded{Category: category, Result: resolver.ResolvePrayers(ctx, category)}
			}
		},
		LoadFavorites: func() tea.Cmd {
			return func() tea.Msg {
				names, err := st.Favorites()
				return ui.FavoritesLoaded{Names: names, Err: err}
			}
		},
		ToggleFavorite: func(name string) tea.Cmd {
			return func() tea.Msg {
				fav, err := st.ToggleFavorite(name)
				return ui.FavoriteToggled{Name: name, Favorite: fav, Err: err}
			}
		},
		SaveSettings: func(n config.Notifications) tea.Cmd {
			return func() tea.Msg {
				cfg.Notifications = n
				if err := config.Save(cfg); err != nil {
					return ui.SettingsSaved{Notifications: n, Err: err}
				}
				applyPlan(notifySettings(n))
				return ui.SettingsSaved{Notifications: n}
			}
		},
		CheckHealth: func() tea.Cmd {
			return func() tea.Msg {
				return ui.HealthChecked{OK: client.Health(ctx)}
			}
		},
	}

	app := ui.NewApp(cmds, cfg.Notifications)
	program := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		log.Printf("Error running program: %v", err)
	}
}
