package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, constants.HomeScreenKey, cfg.StartScreen)
	assert.Equal(t, constants.DefaultRepeatDelay, cfg.Input.RepeatDelayDuration())
	assert.Equal(t, constants.DefaultRepeatInterval, cfg.Input.RepeatIntervalDuration())
}

func TestDefaultTOMLMatchesDefault(t *testing.T) {
	cfg, err := Parse([]byte(DefaultTOML()))
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want, cfg)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.toml")
	writeFile(t, path, `
title = "Backup"
locale = "de"

[theme]
accent = "#FF8800"

[input]
repeat_delay = "500ms"

[keys]
"x" = "B"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Backup", cfg.Title)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
	assert.Equal(t, "dark", cfg.Theme.Preset)
	assert.Equal(t, "#FF8800", cfg.Theme.Accent)
	assert.Equal(t, 500*time.Millisecond, cfg.Input.RepeatDelayDuration())
	assert.Equal(t, constants.DefaultRepeatInterval, cfg.Input.RepeatIntervalDuration())
	assert.Equal(t, map[string]string{"x": "B"}, cfg.Keys)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.toml")
	writeFile(t, path, `title = `)

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad locale", func(c *Config) { c.Locale = "not a locale" }, "locale"},
		{"bad preset", func(c *Config) { c.Theme.Preset = "neon" }, "theme.preset"},
		{"bad colour", func(c *Config) { c.Theme.Accent = "#12" }, "theme.accent"},
		{"bad delay", func(c *Config) { c.Input.RepeatDelay = "soon" }, "input.repeat_delay"},
		{"negative interval", func(c *Config) { c.Input.RepeatInterval = "-5ms" }, "input.repeat_interval"},
		{"unknown button", func(c *Config) { c.Keys["x"] = "Turbo" }, "unknown button"},
		{"light preset", func(c *Config) { c.Theme.Preset = "light" }, ""},
		{"empty optional fields", func(c *Config) { c.LogLevel, c.Locale = "", "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.toml")
	writeFile(t, path, `title = "Before"`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- WatchWithDebounce(ctx, path, 10*time.Millisecond, func(cfg Config) {
			reloaded <- cfg
		})
	}()

	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case cfg := <-reloaded:
			assert.Equal(t, "After", cfg.Title)
			cancel()
			require.NoError(t, <-done)
			return
		case <-ticker.C:
			// Rewrite until the watcher is registered and sees a change.
			writeFile(t, path, `title = "After"`)
		case <-deadline:
			t.Fatal("config was not reloaded")
		}
	}
}

func TestWatchSkipsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.toml")
	writeFile(t, path, `title = "Before"`)

	ctx, cancel := context.WithTimeout(context.Background(), 600*time.Millisecond)
	defer cancel()

	calls := 0
	go func() {
		time.Sleep(100 * time.Millisecond)
		writeFile(t, path, `log_level = "loud"`)
	}()

	err := WatchWithDebounce(ctx, path, 10*time.Millisecond, func(Config) { calls++ })
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "gui.toml"), func(Config) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch config directory")
}
