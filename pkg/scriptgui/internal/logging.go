package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	fileMu  sync.Mutex
	logFile *os.File
	logPath string

	// Every logger writes through output, so SetLogPath also moves loggers
	// handed out before it was called.
	output = &switchWriter{w: os.Stderr}

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

// SetLogPath sends all log output to the file at path, creating parent
// directories. An empty path, or a file that cannot be opened, leaves logs on
// stderr; the terminal GUI owns stdout.
func SetLogPath(path string) {
	fileMu.Lock()
	defer fileMu.Unlock()

	if path == logPath && (path == "" || logFile != nil) {
		return
	}
	closeLogFile()
	logPath = path
	if path == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Can't open log file, stay on stderr
		return
	}
	logFile = f
	output.set(f)
}

// closeLogFile must be called with fileMu held.
func closeLogFile() {
	output.set(os.Stderr)
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(handler)
}

// GetLogger returns the application logger handed to scripts.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the framework logger, tagged with component=scriptgui.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelWarn)
		internalLogger = newLogger(internalLevelVar).With("component", "scriptgui")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level. Unknown names report false
// and yield slog.LevelInfo.
func ParseLevel(rawLevel string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func SetRawLogLevel(rawLevel string) {
	level, _ := ParseLevel(rawLevel)
	SetLogLevel(level)
}

// CloseLogger closes the log file and moves output back to stderr.
func CloseLogger() {
	fileMu.Lock()
	defer fileMu.Unlock()
	closeLogFile()
	logPath = ""
}
