package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Default location: Berlin.
const (
	DefaultLatitude  = 52.52
	DefaultLongitude = 13.41
)

const (
	defaultRefreshInterval = 300 * time.Second
	defaultFrameDelay      = 500 * time.Millisecond
	defaultPollTimeout     = 33 * time.Millisecond
)

var validate = validator.New()

// Location is the coordinate pair read from the config file.
type Location struct {
	Latitude  float64 `toml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `toml:"longitude" validate:"gte=-180,lte=180"`
}

// Config is the full runtime configuration. The file only carries the
// location; the timing knobs come from env vars or defaults.
type Config struct {
	Location Location `toml:"location"`

	// RefreshInterval bounds how often weather is refetched.
	RefreshInterval time.Duration `toml:"-"`
	// FrameDelay gates sun-frame advancement, independent of the tick.
	FrameDelay time.Duration `toml:"-"`
	// PollTimeout is the per-tick input wait, i.e. the soft frame interval.
	PollTimeout time.Duration `toml:"-"`
}

// Default returns the built-in configuration with env overrides applied.
func Default() *Config {
	cfg := &Config{
		Location: Location{Latitude: DefaultLatitude, Longitude: DefaultLongitude},
	}
	applyEnv(cfg)
	return cfg
}

// Load reads the TOML config file and validates it. A missing or broken
// file is an error; callers fall back to Default and print UsageHint.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Location: Location{Latitude: DefaultLatitude, Longitude: DefaultLongitude},
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validate.Struct(cfg.Location); err != nil {
		return nil, fmt.Errorf("invalid location in %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// configPath resolves $XDG_CONFIG_HOME/weathr/config.toml, falling back
// to ~/.config/weathr/config.toml.
func configPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "weathr", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "weathr", "config.toml"), nil
}

func applyEnv(cfg *Config) {
	cfg.RefreshInterval = getenvDuration("WEATHR_REFRESH_INTERVAL", defaultRefreshInterval)
	cfg.FrameDelay = getenvDuration("WEATHR_FRAME_DELAY", defaultFrameDelay)
	cfg.PollTimeout = getenvDuration("WEATHR_POLL_TIMEOUT", defaultPollTimeout)
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

// UsageHint explains how to provide a config file. Printed to stderr
// when loading fails and the default location takes over.
func UsageHint() string {
	return fmt.Sprintf(`
Continuing with default location (Berlin: %.2f°N, %.2f°E)

To customize, create a config file at:
  $XDG_CONFIG_HOME/weathr/config.toml
  or ~/.config/weathr/config.toml

Example config.toml:
  [location]
  latitude = 52.52
  longitude = 13.41

`, DefaultLatitude, DefaultLongitude)
}
