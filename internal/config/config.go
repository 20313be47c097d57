package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application settings. Values come from DefaultConfig,
// then SHADOW_* environment variables, then command-line flags.
type Config struct {
	// LogFile is where structured logs go. Empty disables logging.
	LogFile  string `env:"SHADOW_LOG_FILE"`
	LogLevel string `env:"SHADOW_LOG_LEVEL"`

	// DBPath is the SQLite file for the advisory request log. Empty keeps
	// the log in memory for the lifetime of the process.
	DBPath string `env:"SHADOW_DB"`

	// CatalogPath overrides the embedded lesson catalog.
	CatalogPath string `env:"SHADOW_CATALOG"`

	SimDuration    time.Duration `env:"SHADOW_SIM_DURATION"`
	AdvisorTimeout time.Duration `env:"SHADOW_ADVISOR_TIMEOUT"`
	LessonXP       int           `env:"SHADOW_LESSON_XP"`

	StartXP      int `env:"SHADOW_START_XP"`
	StartStreak  int `env:"SHADOW_START_STREAK"`
	StartLessons int `env:"SHADOW_START_LESSONS"`
}

// DefaultConfig returns a Config with the stock operative profile.
func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		SimDuration:    2 * time.Second,
		AdvisorTimeout: 30 * time.Second,
		LessonXP:       50,
		StartXP:        4120,
		StartStreak:    4,
		StartLessons:   24,
	}
}

// Load returns DefaultConfig overlaid with environment variables.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.LogLevel)
	}
	if c.SimDuration <= 0 {
		return fmt.Errorf("simulation duration must be positive, got %s", c.SimDuration)
	}
	if c.AdvisorTimeout <= 0 {
		return fmt.Errorf("advisor timeout must be positive, got %s", c.AdvisorTimeout)
	}
	if c.LessonXP < 0 {
		return fmt.Errorf("lesson XP reward must not be negative, got %d", c.LessonXP)
	}
	if c.StartXP < 0 || c.StartStreak < 0 || c.StartLessons < 0 {
		return fmt.Errorf("starting stats must not be negative")
	}
	return nil
}
