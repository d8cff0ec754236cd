package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls fn with the reloaded config each time the file at path is
// written, created or renamed into place. Files that fail to load are logged
// and skipped; fn only sees valid configs. Watch blocks until ctx is done.
//
// fn runs on the watcher goroutine. UI code should forward the value to the
// bubbletea program with Program.Send.
func Watch(ctx context.Context, path string, fn func(Config)) error {
	return WatchWithDebounce(ctx, path, DefaultDebounce, fn)
}

func WatchWithDebounce(ctx context.Context, path string, debounce time.Duration, fn func(Config)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file instead of writing it.
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config directory %s: %w", dir, err)
	}

	logger := internal.GetInternalLogger()
	logger.Debug("Watching config file", "path", absPath)

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			reload = timer.C

		case <-reload:
			reload = nil
			cfg, err := Load(absPath)
			if err != nil {
				logger.Warn("Config reload failed, keeping previous settings", "path", absPath, "error", err)
				continue
			}
			logger.Info("Config reloaded", "path", absPath)
			fn(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Config watcher error", "error", err)
		}
	}
}
