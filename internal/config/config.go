// Package config loads and saves user settings as a JSON file under
// the app's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = ".missal"
	fileName   = "config.json"

	// EnvAPIURL overrides the configured API base URL when set.
	EnvAPIURL = "MISSAL_API_URL"

	defaultAPIBaseURL    = "http://localhost:8000"
	defaultRetentionDays = 30
)

// Notifications holds the user's notification preferences. Times are
// local wall-clock hours and minutes.
type Notifications struct {
	DailyEnabled bool `json:"daily_enabled"`
	DailyHour    int  `json:"daily_hour"`
	DailyMinute  int  `json:"daily_minute"`

	RemindersEnabled bool `json:"reminders_enabled"`
	MorningHour      int  `json:"morning_hour"`
	MorningMinute    int  `json:"morning_minute"`
	EveningHour      int  `json:"evening_hour"`
	EveningMinute    int  `json:"evening_minute"`
}

// Config is the persisted application configuration.
type Config struct {
	APIBaseURL    string        `json:"api_base_url"`
	CachePath     string        `json:"cache_path"`
	RetentionDays int           `json:"retention_days"`
	Notifications Notifications `json:"notifications"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		APIBaseURL:    defaultAPIBaseURL,
		CachePath:     defaultCachePath(),
		RetentionDays: defaultRetentionDays,
		Notifications: Notifications{
			DailyEnabled:  true,
			DailyHour:     6,
			MorningHour:   7,
			EveningHour:   21,
		},
	}
}

func appDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}

func configPath() string {
	return filepath.Join(appDir(), fileName)
}

func defaultCachePath() string {
	return filepath.Join(appDir(), "missal.db")
}

// Load reads the config file, filling gaps with defaults. A missing
// file is not an error: the defaults are returned and written on the
// next Save. The MISSAL_API_URL environment variable, when set,
// overrides the file's API base URL.
func Load() (Config, error) {
	cfg, err := loadFrom(configPath())
	if err != nil {
		return cfg, err
	}
	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIBaseURL = url
	}
	return cfg, nil
}

func loadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.CachePath == "" {
		cfg.CachePath = defaultCachePath()
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = defaultRetentionDays
	}
	return cfg, nil
}

// Save writes the config file, creating the app directory if needed.
func Save(cfg Config) error {
	return saveTo(configPath(), cfg)
}

func saveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
