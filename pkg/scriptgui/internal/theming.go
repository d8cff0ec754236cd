package internal

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colours of the terminal GUI.
type Theme struct {
	HighlightColor       lipgloss.Color // Focused drawer item background, pressed buttons
	AccentColor          lipgloss.Color // Title bar, selected section, floating action
	ButtonLabelColor     lipgloss.Color // Button label text
	TextColor            lipgloss.Color // Default text color
	HighlightedTextColor lipgloss.Color // Text on highlighted items
	HintColor            lipgloss.Color // Footer help, breadcrumbs
	BackgroundColor      lipgloss.Color // Snackbar and alert background
	ErrorColor           lipgloss.Color // Cancel buttons, failure status
	OutlineColor         lipgloss.Color // Frame borders
}

var (
	themeMu      sync.RWMutex
	currentTheme Theme
)

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// HexToColor converts 0xRRGGBB to a terminal colour.
func HexToColor(hex uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", hex&0xFFFFFF))
}

// ParseHexColor accepts "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (lipgloss.Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(trimmed) != 6 {
		return "", fmt.Errorf("colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return "", fmt.Errorf("colour %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}
