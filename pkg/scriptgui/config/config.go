// Package config loads the TOML settings file of a script GUI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
)

// Config is the top-level TOML structure.
type Config struct {
	Title       string            `toml:"title"`
	LogLevel    string            `toml:"log_level"`
	LogPath     string            `toml:"log_path"`
	Locale      string            `toml:"locale"`
	StartScreen string            `toml:"start_screen"`
	Theme       ThemeConfig       `toml:"theme"`
	Input       InputConfig       `toml:"input"`
	Keys        map[string]string `toml:"keys"` // terminal key -> virtual button name
}

// ThemeConfig overrides colours of the selected preset. Empty fields keep
// the preset colour.
type ThemeConfig struct {
	Preset     string `toml:"preset"` // "dark" or "light"
	Accent     string `toml:"accent"`
	Highlight  string `toml:"highlight"`
	Text       string `toml:"text"`
	Hint       string `toml:"hint"`
	Background string `toml:"background"`
	Error      string `toml:"error"`
}

type InputConfig struct {
	Device         string `toml:"device"` // evdev node, empty disables hardware input
	RepeatDelay    string `toml:"repeat_delay"`
	RepeatInterval string `toml:"repeat_interval"`
}

const defaultConfigTOML = `# scriptgui settings
title = "My Script"
log_level = "info"
log_path = "logs/scriptgui.log"
locale = "en"
start_screen = "Home"

[theme]
preset = "dark"

[input]
device = ""
repeat_delay = "300ms"
repeat_interval = "50ms"

[keys]
`

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:       "My Script",
		LogLevel:    "info",
		LogPath:     constants.DefaultLogPath,
		Locale:      "en",
		StartScreen: constants.HomeScreenKey,
		Theme:       ThemeConfig{Preset: "dark"},
		Input: InputConfig{
			RepeatDelay:    constants.DefaultRepeatDelay.String(),
			RepeatInterval: constants.DefaultRepeatInterval.String(),
		},
		Keys: map[string]string{},
	}
}

// DefaultTOML is a commented config file matching Default.
func DefaultTOML() string {
	return defaultConfigTOML
}

// Load reads and validates the file at path. A missing file is not an error:
// the defaults are returned. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		internal.GetInternalLogger().Debug("Config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, ok := internal.ParseLevel(c.LogLevel); !ok {
			return fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel)
		}
	}
	if c.Locale != "" {
		if _, err := internal.ParseLocale(c.Locale); err != nil {
			return fmt.Errorf("locale: %w", err)
		}
	}

	switch strings.ToLower(c.Theme.Preset) {
	case "", "dark", "light":
	default:
		return fmt.Errorf("theme.preset %q: want dark or light", c.Theme.Preset)
	}
	colours := map[string]string{
		"accent":     c.Theme.Accent,
		"highlight":  c.Theme.Highlight,
		"text":       c.Theme.Text,
		"hint":       c.Theme.Hint,
		"background": c.Theme.Background,
		"error":      c.Theme.Error,
	}
	for name, raw := range colours {
		if raw == "" {
			continue
		}
		if _, err := internal.ParseHexColor(raw); err != nil {
			return fmt.Errorf("theme.%s: %w", name, err)
		}
	}

	if _, err := parseDuration("input.repeat_delay", c.Input.RepeatDelay); err != nil {
		return err
	}
	if _, err := parseDuration("input.repeat_interval", c.Input.RepeatInterval); err != nil {
		return err
	}

	for key, button := range c.Keys {
		if strings.EqualFold(button, constants.VirtualButtonUnassigned.String()) {
			continue
		}
		if _, ok := constants.ParseVirtualButton(button); !ok {
			return fmt.Errorf("keys.%q: unknown button %q", key, button)
		}
	}
	return nil
}

// RepeatDelayDuration is the hold time before a direction starts repeating.
func (c InputConfig) RepeatDelayDuration() time.Duration {
	d, err := parseDuration("", c.RepeatDelay)
	if err != nil || d == 0 {
		return constants.DefaultRepeatDelay
	}
	return d
}

// RepeatIntervalDuration is the time between repeats of a held direction.
func (c InputConfig) RepeatIntervalDuration() time.Duration {
	d, err := parseDuration("", c.RepeatInterval)
	if err != nil || d == 0 {
		return constants.DefaultRepeatInterval
	}
	return d
}

func parseDuration(field, raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", field)
	}
	return d, nil
}
