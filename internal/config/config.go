// Package config loads FacilitatorStyles runtime settings from the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Config holds every runtime setting. Unset variables keep the values from
// DefaultConfig.
type Config struct {
	// DataDir holds the preference database.
	DataDir string `env:"FACILISTYLES_DATA_DIR"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `env:"FACILISTYLES_LOG_LEVEL"`
	// Seed fixes the question order. 0 draws a fresh seed per process.
	Seed int64 `env:"FACILISTYLES_SEED"`
	// NoPrefs disables the preference store.
	NoPrefs bool `env:"FACILISTYLES_NO_PREFS"`
	// DarkMode selects the terminal color theme.
	DarkMode bool `env:"FACILISTYLES_DARK_MODE"`
	// ShareURL is appended to share text and links.
	ShareURL string `env:"FACILISTYLES_SHARE_URL"`
	// PrefsMaxAge is how long the last result is remembered. 0 keeps it forever.
	PrefsMaxAge time.Duration `env:"FACILISTYLES_PREFS_MAX_AGE"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:     filepath.Join(home, ".facilistyles"),
		LogLevel:    "info",
		DarkMode:    true,
		PrefsMaxAge: 365 * 24 * time.Hour,
	}
}

// Load returns DefaultConfig overridden by the environment. It does not
// validate: callers apply their own overrides first, then call Validate.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.PrefsMaxAge < 0 {
		return fmt.Errorf("prefs max age must not be negative, got %s", c.PrefsMaxAge)
	}
	if !c.NoPrefs && c.DataDir == "" {
		return fmt.Errorf("data dir is required unless preferences are disabled")
	}
	return nil
}
