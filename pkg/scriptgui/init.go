// Package scriptgui provides a component library for building control
// panels ("GUIs") for automation scripts.
//
// A GUI is a set of primary screens, each with optional nested detail
// screens, side frames, and a floating action. The package handles logging,
// localisation and the per-window Scope (navigation, alerts, snackbars and
// lifecycle); the tui package renders a Scope in the terminal.
package scriptgui

import (
	"log/slog"
	"os"

	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
)

// Options configures the framework initialization.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level: debug, info, warn, error
	Locale   string // BCP 47 tag for framework strings, e.g. "en" or "de"
}

// Init configures logging and localisation. Call it before building a GUI.
// SCRIPTGUI_LOG_LEVEL and SCRIPTGUI_LOCALE override the options; ENVIRONMENT=DEV
// turns on framework debug logging.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}

	level := options.LogLevel
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level != "" {
		internal.SetRawLogLevel(level)
	}

	locale := options.Locale
	if env := os.Getenv(constants.LocaleEnvVar); env != "" {
		locale = env
	}
	if locale != "" {
		if err := internal.SetLocale(locale); err != nil {
			return NewInfrastructureError(OpSetLocale, err)
		}
	}
	return nil
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Loggers obtained earlier follow the new path.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
