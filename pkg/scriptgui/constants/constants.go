// Package constants defines shared constants, types, and configuration values
// used throughout the scriptgui framework.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at start-up.
const (
	EnvironmentEnvVar = "ENVIRONMENT"         // DEV enables debug logging for the framework
	LogLevelEnvVar    = "SCRIPTGUI_LOG_LEVEL" // overrides the configured application log level
	LocaleEnvVar      = "SCRIPTGUI_LOCALE"    // overrides the configured locale
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Navigation keys of the built-in screens every GUI starts and ends with.
const (
	HomeScreenKey     = "Home"
	SettingsScreenKey = "Settings"
)

// VirtualButton represents an abstract input button, mapped from a terminal
// key or a physical device. This abstraction lets the same navigation
// bindings work for keyboards and game-pad style hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonQuit
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
	VirtualButtonQuit:       "Quit",
}

func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

func (vb VirtualButton) String() string {
	return vb.GetName()
}

// IsDirectional reports whether the button is one of the four d-pad directions.
func (vb VirtualButton) IsDirectional() bool {
	return vb >= VirtualButtonUp && vb <= VirtualButtonRight
}

// ParseVirtualButton looks a button up by name, ignoring case.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for vb, n := range buttonNames {
		if vb != VirtualButtonUnassigned && strings.EqualFold(n, strings.TrimSpace(name)) {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// Default timing constants.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Held direction delay before the first repeat
	DefaultRepeatInterval = 50 * time.Millisecond  // Held direction delay between repeats
	SnackbarShort         = 4 * time.Second
	SnackbarLong          = 10 * time.Second
)

// DefaultLogPath is used when neither the config nor the CLI names a log file.
const DefaultLogPath = "logs/scriptgui.log"
