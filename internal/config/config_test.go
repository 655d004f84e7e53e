package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jokenpo.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 600*time.Millisecond, cfg.Delay())
	assert.Nil(t, cfg.Game.Seed)
	assert.Equal(t, "en", cfg.UI.Locale)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.Empty(t, cfg.UI.LogFile)
	assert.True(t, cfg.UseAltScreen())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
game {
  delay_ms = 250
  seed     = 42
}

ui {
  locale     = "pt"
  log_level  = "debug"
  log_file   = "/tmp/jokenpo-test.log"
  alt_screen = false
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 250*time.Millisecond, cfg.Delay())
	require.NotNil(t, cfg.Game.Seed)
	assert.Equal(t, int64(42), *cfg.Game.Seed)
	assert.Equal(t, "pt", cfg.UI.Locale)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "/tmp/jokenpo-test.log", cfg.UI.LogFile)
	assert.False(t, cfg.UseAltScreen())
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
ui {
  locale = "pt"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 600*time.Millisecond, cfg.Delay())
	assert.Equal(t, "pt", cfg.UI.Locale)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.True(t, cfg.UseAltScreen())
}

func TestLoadZeroDelayIsKept(t *testing.T) {
	path := writeConfig(t, `
game {
  delay_ms = 0
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Delay())
}

func TestLoadInvalidSyntax(t *testing.T) {
	path := writeConfig(t, `game {`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative delay", func(c *Config) { _ = c.SetDelay(-time.Second) }},
		{"unknown log level", func(c *Config) { c.UI.LogLevel = "verbose" }},
		{"unknown locale", func(c *Config) { c.UI.Locale = "fr" }},
		{"missing ui", func(c *Config) { c.UI = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSetDelay(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.SetDelay(1500*time.Millisecond))
	assert.Equal(t, 1500*time.Millisecond, cfg.Delay())

	require.NoError(t, cfg.SetDelay(0))
	assert.Equal(t, time.Duration(0), cfg.Delay())
}

func TestSetDelayRejectsSubMillisecond(t *testing.T) {
	cfg := Default()
	err := cfg.SetDelay(500 * time.Microsecond)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, 600*time.Millisecond, cfg.Delay(), "delay left unchanged")
}
