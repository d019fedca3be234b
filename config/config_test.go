package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesMenuDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts := cfg.MenuOptions()
	defaults := overlay.DefaultOptions()
	assert.Equal(t, defaults.Scale, opts.Scale)
	assert.Equal(t, defaults.Margin, opts.Margin)
	assert.Equal(t, defaults.Colors, opts.Colors)
	assert.Equal(t, 60, cfg.Loop.TickRate)
}

func TestLoadFromReader(t *testing.T) {
	const input = `
[panel]
scale = 0.001

[cache]
float_tolerance = 0.05

[log]
level = "debug"
format = "json"

[colors]
pointer = "#ff0000"
disabled = "#00000080"
`
	cfg, err := LoadFromReader(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, float32(0.001), cfg.Panel.Scale)
	assert.Equal(t, float32(0.5), cfg.Panel.Margin, "unset keys keep their defaults")
	assert.Equal(t, float32(0.05), cfg.Cache.FloatTolerance)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts := cfg.MenuOptions()
	assert.Equal(t, ui.Color{R: 1, G: 0, B: 0, A: 1}, opts.Colors.Pointer)
	assert.InDelta(t, 0.5, opts.Colors.Disabled.A, 0.01)
	assert.Equal(t, ui.Yellow, opts.Colors.Trigger)
	assert.Equal(t, float32(0.05), opts.FloatTolerance)
}

func TestLoadFromReaderRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad color":    "[colors]\npointer = \"blue\"",
		"bad scale":    "[panel]\nscale = 0",
		"bad level":    "[log]\nlevel = \"loud\"",
		"bad tick":     "[loop]\ntick_rate = -1",
		"bad toml":     "[panel",
		"bad tolerace": "[cache]\nfloat_tolerance = -0.1",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadFromFile(filepath.Join(dir, "missing.toml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Panel, cfg.Panel)
	})

	t.Run("missing file still validates env overrides", func(t *testing.T) {
		t.Setenv("CCKDEBUG_TICK_RATE", "0")

		path := filepath.Join(dir, "missing.toml")
		_, err := LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tick_rate")
		assert.Contains(t, err.Error(), path)
	})

	t.Run("errors carry the path", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[loop]\ntick_rate = 0\n"), 0o644))

		_, err := LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CCKDEBUG_LOG_LEVEL", "warn")
	t.Setenv("CCKDEBUG_TICK_RATE", "30")

	cfg, err := LoadFromReader(strings.NewReader("[loop]\ntick_rate = 120\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Loop.TickRate)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#00b0ff")
	require.NoError(t, err)
	assert.Equal(t, "#00b0ffff", c.Hex())

	c, err = ParseHexColor("ff800040")
	require.NoError(t, err)
	assert.Equal(t, "#ff800040", c.Hex())

	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "component", "menu")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"component":"menu"`)
}
