// Package theme provides the colour presets of the terminal GUI and merges
// user overrides from the config file into them.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/highorder/scriptgui/pkg/scriptgui/config"
	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
)

// Theme is the colour set used by the terminal renderer.
type Theme = internal.Theme

// Apply makes t the active theme.
func Apply(t Theme) {
	internal.SetTheme(t)
}

// Current returns the active theme.
func Current() Theme {
	return internal.GetTheme()
}

// Dark is the default preset: teal accent on a dark terminal.
func Dark() Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x808080),
		BackgroundColor:      internal.HexToColor(0x1E1E1E),
		ErrorColor:           internal.HexToColor(0xE81123),
		OutlineColor:         internal.HexToColor(0x3C3C3C),
	}
}

// Light suits terminals with a light background.
func Light() Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(0x202020),
		AccentColor:          internal.HexToColor(0x006666),
		ButtonLabelColor:     internal.HexToColor(0xFFFFFF),
		TextColor:            internal.HexToColor(0x202020),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		HintColor:            internal.HexToColor(0x707070),
		BackgroundColor:      internal.HexToColor(0xF0F0F0),
		ErrorColor:           internal.HexToColor(0xC50F1F),
		OutlineColor:         internal.HexToColor(0xC8C8C8),
	}
}

// Preset returns the named preset; unknown names return Dark.
func Preset(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// FromConfig starts from the configured preset and applies every colour the
// config sets. config.Validate rejects bad colours, so unparsable values are
// skipped here.
func FromConfig(cfg config.ThemeConfig) Theme {
	t := Preset(cfg.Preset)
	overrides := []struct {
		raw string
		dst *lipgloss.Color
	}{
		{cfg.Accent, &t.AccentColor},
		{cfg.Highlight, &t.HighlightColor},
		{cfg.Text, &t.TextColor},
		{cfg.Hint, &t.HintColor},
		{cfg.Background, &t.BackgroundColor},
		{cfg.Error, &t.ErrorColor},
	}
	for _, o := range overrides {
		if o.raw == "" {
			continue
		}
		if c, err := internal.ParseHexColor(o.raw); err == nil {
			*o.dst = c
		}
	}
	return t
}
