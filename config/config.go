// Package config provides TOML-based configuration for the debugger overlay.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/plus3/cckdebug/overlay"
)

// Config is the top-level configuration.
type Config struct {
	Panel  PanelConfig  `toml:"panel"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
	Loop   LoopConfig   `toml:"loop"`
	Colors ColorsConfig `toml:"colors"`
}

// PanelConfig controls how the panel docks to the quick menu.
type PanelConfig struct {
	Scale  float32 `toml:"scale"`
	Margin float32 `toml:"margin"`
	Width  float32 `toml:"width"`
}

// CacheConfig tunes the field cache.
type CacheConfig struct {
	// FloatTolerance is an absolute tolerance for float fields. Zero uses
	// approximate comparison.
	FloatTolerance float32 `toml:"float_tolerance"`
}

// LoopConfig controls the frame loop of the commands.
type LoopConfig struct {
	// TickRate is the number of frames per second.
	TickRate int `toml:"tick_rate"`
}

// ColorsConfig holds the toggle checkmark colours.
type ColorsConfig struct {
	Pointer  Color `toml:"pointer"`
	Trigger  Color `toml:"trigger"`
	Reset    Color `toml:"reset"`
	Pinned   Color `toml:"pinned"`
	Unpinned Color `toml:"unpinned"`
	Disabled Color `toml:"disabled"`
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields DefaultConfig().
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("config: %s: %w", path, err)
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader on top of the
// defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration matching overlay.DefaultOptions.
func DefaultConfig() *Config {
	opts := overlay.DefaultOptions()
	return &Config{
		Panel: PanelConfig{
			Scale:  opts.Scale,
			Margin: opts.Margin,
			Width:  1000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Colors: ColorsConfig{
			Pointer:  Color(opts.Colors.Pointer),
			Trigger:  Color(opts.Colors.Trigger),
			Reset:    Color(opts.Colors.Reset),
			Pinned:   Color(opts.Colors.Pinned),
			Unpinned: Color(opts.Colors.Unpinned),
			Disabled: Color(opts.Colors.Disabled),
		},
	}
}

// Validate rejects values the overlay cannot run with.
func (c *Config) Validate() error {
	if c.Panel.Scale <= 0 {
		return fmt.Errorf("config: panel.scale must be positive, got %v", c.Panel.Scale)
	}
	if c.Cache.FloatTolerance < 0 {
		return fmt.Errorf("config: cache.float_tolerance must not be negative, got %v", c.Cache.FloatTolerance)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CCKDEBUG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CCKDEBUG_TICK_RATE"); v != "" {
		if rate, err := strconv.Atoi(v); err == nil {
			cfg.Loop.TickRate = rate
		}
	}
}

// MenuOptions converts the configuration into overlay options. Name
// resolvers are left for the caller.
func (c *Config) MenuOptions() overlay.Options {
	opts := overlay.DefaultOptions()
	opts.Scale = c.Panel.Scale
	opts.Margin = c.Panel.Margin
	opts.FloatTolerance = c.Cache.FloatTolerance
	opts.Colors = overlay.Colors{
		Pointer:  c.Colors.Pointer.UI(),
		Trigger:  c.Colors.Trigger.UI(),
		Reset:    c.Colors.Reset.UI(),
		Pinned:   c.Colors.Pinned.UI(),
		Unpinned: c.Colors.Unpinned.UI(),
		Disabled: c.Colors.Disabled.UI(),
	}
	return opts
}
