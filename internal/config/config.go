// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/javiermolinar/dayline/internal/clock"
	"github.com/javiermolinar/dayline/internal/layout"
	"github.com/javiermolinar/dayline/internal/tui/theme"
)

// Hour label formats.
const (
	HourFormat24 = "24h"
	HourFormat12 = "12h"
)

// Source kinds.
const (
	SourceSample = "sample"
	SourceFile   = "file"
	SourceICS    = "ics"
	SourceSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Clock  ClockConfig  `toml:"clock"`
	Source SourceConfig `toml:"source"`
	UI     UIConfig     `toml:"ui"`
}

// GridConfig holds timeline geometry.
type GridConfig struct {
	HourHeight     float64 `toml:"hour_height"`      // pixels per hour
	StartHour      float64 `toml:"start_hour"`       // first displayed hour
	Hours          int     `toml:"hours"`            // displayed hours
	MinBlockHeight float64 `toml:"min_block_height"` // pixels
	LinesPerHour   int     `toml:"lines_per_hour"`   // terminal lines per hour
	ColumnWidth    int     `toml:"column_width"`     // terminal cells per lane
	MinFreeMinutes int     `toml:"min_free_minutes"` // shortest gap shown as free time
}

// ClockConfig holds the refresh schedule for the current-time marker.
type ClockConfig struct {
	Refresh string `toml:"refresh"` // cron spec, e.g. "@every 1m"
}

// SourceConfig selects where time blocks come from.
type SourceConfig struct {
	Kind string `toml:"kind"` // "sample", "file", "ics", "sqlite"
	Path string `toml:"path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme     string `toml:"theme"`      // "mocha", "latte"
	Language  string `toml:"language"`   // BCP 47 tag for weekday names
	DayRadius int    `toml:"day_radius"` // days shown either side of the selection

	HourFormat string `toml:"hour_format"` // "24h" (07:00) or "12h" (7 AM)
}

// envOverrides lists the supported DAYLINE_* variables. It is seeded with the
// current values, so unset variables change nothing.
type envOverrides struct {
	HourHeight     float64 `env:"DAYLINE_HOUR_HEIGHT"`
	StartHour      float64 `env:"DAYLINE_START_HOUR"`
	Hours          int     `env:"DAYLINE_HOURS"`
	MinBlockHeight float64 `env:"DAYLINE_MIN_BLOCK_HEIGHT"`
	LinesPerHour   int     `env:"DAYLINE_LINES_PER_HOUR"`
	ColumnWidth    int     `env:"DAYLINE_COLUMN_WIDTH"`
	MinFreeMinutes int     `env:"DAYLINE_MIN_FREE_MINUTES"`
	Refresh        string  `env:"DAYLINE_REFRESH"`
	SourceKind     string  `env:"DAYLINE_SOURCE"`
	SourcePath     string  `env:"DAYLINE_SOURCE_PATH"`
	Theme          string  `env:"DAYLINE_UI_THEME"`
	Language       string  `env:"DAYLINE_LANGUAGE"`
	DayRadius      int     `env:"DAYLINE_DAY_RADIUS"`
	HourFormat     string  `env:"DAYLINE_HOUR_FORMAT"`
}

// Default returns the default configuration.
func Default() *Config {
	g := layout.DefaultGrid()
	return &Config{
		Grid: GridConfig{
			HourHeight:     g.HourHeight,
			StartHour:      g.StartHour,
			Hours:          g.Hours,
			MinBlockHeight: g.MinBlockHeight,
			LinesPerHour:   4,
			ColumnWidth:    28,
			MinFreeMinutes: 60,
		},
		Clock: ClockConfig{
			Refresh: clock.DefaultSpec,
		},
		Source: SourceConfig{
			Kind: SourceSample,
		},
		UI: UIConfig{
			Theme:      "mocha",
			Language:   "en",
			DayRadius:  3,
			HourFormat: HourFormat24,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "dayline", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Source.Path = expandPath(cfg.Source.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config. Unset variables
// leave the current values in place.
func applyEnvOverrides(cfg *Config) error {
	e := envOverrides{
		HourHeight:     cfg.Grid.HourHeight,
		StartHour:      cfg.Grid.StartHour,
		Hours:          cfg.Grid.Hours,
		MinBlockHeight: cfg.Grid.MinBlockHeight,
		LinesPerHour:   cfg.Grid.LinesPerHour,
		ColumnWidth:    cfg.Grid.ColumnWidth,
		MinFreeMinutes: cfg.Grid.MinFreeMinutes,
		Refresh:        cfg.Clock.Refresh,
		SourceKind:     cfg.Source.Kind,
		SourcePath:     cfg.Source.Path,
		Theme:          cfg.UI.Theme,
		Language:       cfg.UI.Language,
		DayRadius:      cfg.UI.DayRadius,
		HourFormat:     cfg.UI.HourFormat,
	}
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parsing DAYLINE_* environment: %w", err)
	}

	cfg.Grid.HourHeight = e.HourHeight
	cfg.Grid.StartHour = e.StartHour
	cfg.Grid.Hours = e.Hours
	cfg.Grid.MinBlockHeight = e.MinBlockHeight
	cfg.Grid.LinesPerHour = e.LinesPerHour
	cfg.Grid.ColumnWidth = e.ColumnWidth
	cfg.Grid.MinFreeMinutes = e.MinFreeMinutes
	cfg.Clock.Refresh = e.Refresh
	cfg.Source.Kind = e.SourceKind
	cfg.Source.Path = e.SourcePath
	cfg.UI.Theme = e.Theme
	cfg.UI.Language = e.Language
	cfg.UI.DayRadius = e.DayRadius
	cfg.UI.HourFormat = e.HourFormat
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	g := c.Grid
	if g.HourHeight <= 0 {
		return errors.New("hour_height must be positive")
	}
	if g.StartHour < 0 || g.StartHour >= 24 {
		return fmt.Errorf("start_hour must be in [0, 24), got %v", g.StartHour)
	}
	if g.Hours <= 0 || g.StartHour+float64(g.Hours) > 24 {
		return fmt.Errorf("hours must be positive and end by midnight, got %d from %v", g.Hours, g.StartHour)
	}
	if g.MinBlockHeight < 0 {
		return errors.New("min_block_height must not be negative")
	}
	if g.LinesPerHour <= 0 {
		return errors.New("lines_per_hour must be positive")
	}
	if g.ColumnWidth < 8 {
		return fmt.Errorf("column_width must be at least 8, got %d", g.ColumnWidth)
	}
	if g.MinFreeMinutes < 0 {
		return errors.New("min_free_minutes must not be negative")
	}

	if err := clock.Validate(c.Clock.Refresh); err != nil {
		return err
	}

	switch c.Source.Kind {
	case SourceSample:
	case SourceFile, SourceICS, SourceSQLite:
		if c.Source.Path == "" {
			return fmt.Errorf("source kind %q requires a path", c.Source.Kind)
		}
	default:
		return fmt.Errorf("invalid source kind: %s", c.Source.Kind)
	}

	if c.UI.Theme == "" {
		return errors.New("theme must be set")
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("invalid theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if _, err := language.Parse(c.UI.Language); err != nil {
		return fmt.Errorf("invalid language %q: %w", c.UI.Language, err)
	}
	if c.UI.DayRadius < 0 || c.UI.DayRadius > 7 {
		return fmt.Errorf("day_radius must be in [0, 7], got %d", c.UI.DayRadius)
	}
	if c.UI.HourFormat != HourFormat24 && c.UI.HourFormat != HourFormat12 {
		return fmt.Errorf("hour_format must be %q or %q, got %q", HourFormat24, HourFormat12, c.UI.HourFormat)
	}
	return nil
}

// LayoutGrid returns the grid the layout engine works with.
func (c *Config) LayoutGrid() layout.Grid {
	return layout.Grid{
		HourHeight:     c.Grid.HourHeight,
		StartHour:      c.Grid.StartHour,
		Hours:          c.Grid.Hours,
		MinBlockHeight: c.Grid.MinBlockHeight,
	}
}

// TwelveHour reports whether hour labels use a 12-hour clock.
func (c *Config) TwelveHour() bool {
	return c.UI.HourFormat == HourFormat12
}

// LanguageTag returns the configured language, English if it does not parse.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.UI.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
