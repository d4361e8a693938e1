// Package config loads tubeview settings.
//
// Settings come from, in increasing precedence: built-in defaults, the
// optional JSON file at ~/.tubeview/config.json, and TUBEVIEW_* environment
// variables (a .env file in the working directory is loaded into the
// environment first, without overriding variables already set).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Environment overrides.
const (
	EnvSeed         = "TUBEVIEW_SEED"
	EnvPageSize     = "TUBEVIEW_PAGE_SIZE"
	EnvMaxPages     = "TUBEVIEW_MAX_PAGES"
	EnvDelayMs      = "TUBEVIEW_DELAY_MS"
	EnvSentinelRows = "TUBEVIEW_SENTINEL_ROWS"
	EnvDataDir      = "TUBEVIEW_HOME"
	EnvDebug        = "TUBEVIEW_DEBUG"
)

type Config struct {
	Catalog CatalogConfig `json:"catalog"`
	Feed    FeedConfig    `json:"feed"`
	UI      UIConfig      `json:"ui"`
	Debug   bool          `json:"debug"`

	// DataDir holds logs and the event log. Not read from the file.
	DataDir string `json:"-"`
}

type CatalogConfig struct {
	// Seed is used only when FixedSeed is set; otherwise each run picks one.
	Seed      int64 `json:"seed"`
	FixedSeed bool  `json:"fixed_seed"`
}

type FeedConfig struct {
	PageSize int `json:"page_size"`
	MaxPages int `json:"max_pages"`
	DelayMs  int `json:"delay_ms"`
}

type UIConfig struct {
	SentinelRows int     `json:"sentinel_rows"`
	SentinelRate float64 `json:"sentinel_rate"` // edges per second
	SearchLimit  int     `json:"search_limit"`
}

// Delay is the simulated fetch latency.
func (f FeedConfig) Delay() time.Duration {
	return time.Duration(f.DelayMs) * time.Millisecond
}

// DefaultConfig mirrors the behavior of the web app tubeview imitates:
// five pages of twenty with a half-second load.
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			PageSize: 20,
			MaxPages: 5,
			DelayMs:  500,
		},
		UI: UIConfig{
			SentinelRows: 3,
			SentinelRate: 4,
			SearchLimit:  20,
		},
		DataDir: DefaultDataDir(),
	}
}

// DefaultDataDir is ~/.tubeview, or TUBEVIEW_HOME when set.
func DefaultDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tubeview")
}

// ConfigPath returns the JSON config file location.
func ConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.json")
}

// Load loads .env, then the config file, then environment overrides, and
// validates the result. A missing file or .env is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := LoadFile(ConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the JSON file at path onto the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies TUBEVIEW_* overrides read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalid)
		}
		c.Catalog.Seed = seed
		c.Catalog.FixedSeed = true
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvPageSize, &c.Feed.PageSize},
		{EnvMaxPages, &c.Feed.MaxPages},
		{EnvDelayMs, &c.Feed.DelayMs},
		{EnvSentinelRows, &c.UI.SentinelRows},
	}
	for _, o := range ints {
		v := getenv(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", o.key, v, ErrInvalid)
		}
		*o.dst = n
	}

	if v := getenv(EnvDebug); v != "" {
		c.Debug, _ = strconv.ParseBool(v)
	}
	if v := getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	return nil
}

// Validate rejects settings the feed engine can't run with.
func (c *Config) Validate() error {
	switch {
	case c.Feed.PageSize <= 0:
		return fmt.Errorf("feed.page_size %d: %w", c.Feed.PageSize, ErrInvalid)
	case c.Feed.MaxPages <= 0:
		return fmt.Errorf("feed.max_pages %d: %w", c.Feed.MaxPages, ErrInvalid)
	case c.Feed.DelayMs < 0:
		return fmt.Errorf("feed.delay_ms %d: %w", c.Feed.DelayMs, ErrInvalid)
	case c.UI.SentinelRows <= 0:
		return fmt.Errorf("ui.sentinel_rows %d: %w", c.UI.SentinelRows, ErrInvalid)
	case c.UI.SentinelRate <= 0:
		return fmt.Errorf("ui.sentinel_rate %v: %w", c.UI.SentinelRate, ErrInvalid)
	case c.UI.SearchLimit <= 0:
		return fmt.Errorf("ui.search_limit %d: %w", c.UI.SearchLimit, ErrInvalid)
	}
	return nil
}

// ResolveSeed returns the fixed seed, or a clock-derived one.
func (c *Config) ResolveSeed() int64 {
	if c.Catalog.FixedSeed {
		return c.Catalog.Seed
	}
	return time.Now().UnixNano()
}
