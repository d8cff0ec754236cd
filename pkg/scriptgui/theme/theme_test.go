package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/highorder/scriptgui/pkg/scriptgui/config"
)

func TestPreset(t *testing.T) {
	assert.Equal(t, Light(), Preset("light"))
	assert.Equal(t, Dark(), Preset("dark"))
	assert.Equal(t, Dark(), Preset(""), "unknown presets fall back to dark")
	assert.Equal(t, lipgloss.Color("#008080"), Dark().AccentColor)
}

func TestFromConfigOverridesColours(t *testing.T) {
	th := FromConfig(config.ThemeConfig{
		Preset: "light",
		Accent: "ff8800",
		Error:  "#00FF00",
		Text:   "bogus",
	})

	assert.Equal(t, lipgloss.Color("#FF8800"), th.AccentColor)
	assert.Equal(t, lipgloss.Color("#00FF00"), th.ErrorColor)
	assert.Equal(t, Light().TextColor, th.TextColor, "invalid colours keep the preset")
	assert.Equal(t, Light().OutlineColor, th.OutlineColor)
}

func TestApply(t *testing.T) {
	prev := Current()
	t.Cleanup(func() { Apply(prev) })

	Apply(Light())
	assert.Equal(t, Light(), Current())
}
