// Package config loads the optional HCL settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Locales supported by the game view.
var Locales = []string{"en", "pt"}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config is the complete settings file.
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings controls turn timing and randomness.
type GameSettings struct {
	DelayMs *int   `hcl:"delay_ms,optional"`
	Seed    *int64 `hcl:"seed,optional"` // unset = seed from the clock
}

// UISettings controls the game view and logging.
type UISettings struct {
	Locale    string `hcl:"locale,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"` // empty = no log file
	AltScreen *bool  `hcl:"alt_screen,optional"`
}

// Default returns the built-in settings.
func Default() *Config {
	delay := 600
	alt := true
	return &Config{
		Game: &GameSettings{DelayMs: &delay},
		UI: &UISettings{
			Locale:    "en",
			LogLevel:  "warn",
			AltScreen: &alt,
		},
	}
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.Game.DelayMs == nil {
		c.Game.DelayMs = defaults.Game.DelayMs
	}

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.Locale == "" {
		c.UI.Locale = defaults.UI.Locale
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.AltScreen == nil {
		c.UI.AltScreen = defaults.UI.AltScreen
	}
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.Game == nil || c.UI == nil {
		return fmt.Errorf("%w: missing settings", ErrInvalidConfig)
	}
	if c.Game.DelayMs != nil && *c.Game.DelayMs < 0 {
		return fmt.Errorf("%w: delay_ms cannot be negative", ErrInvalidConfig)
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("%w: invalid log level: %s", ErrInvalidConfig, c.UI.LogLevel)
	}
	if !isLocale(c.UI.Locale) {
		return fmt.Errorf("%w: unsupported locale: %s", ErrInvalidConfig, c.UI.Locale)
	}
	return nil
}

// Delay returns the suspense delay.
func (c *Config) Delay() time.Duration {
	if c.Game == nil || c.Game.DelayMs == nil {
		return 0
	}
	return time.Duration(*c.Game.DelayMs) * time.Millisecond
}

// SetDelay overrides the delay, e.g. from a command line flag. The delay is
// kept in whole milliseconds, so a positive value below 1ms is an error.
func (c *Config) SetDelay(d time.Duration) error {
	if d > 0 && d < time.Millisecond {
		return fmt.Errorf("%w: delay %s is below 1ms", ErrInvalidConfig, d)
	}
	ms := int(d / time.Millisecond)
	c.Game.DelayMs = &ms
	return nil
}

// UseAltScreen reports whether the game view takes over the whole terminal.
func (c *Config) UseAltScreen() bool {
	return c.UI.AltScreen == nil || *c.UI.AltScreen
}

func isLocale(s string) bool {
	for _, l := range Locales {
		if l == s {
			return true
		}
	}
	return false
}
