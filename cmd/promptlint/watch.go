package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback cadence when fsnotify is unavailable.
const pollInterval = 500 * time.Millisecond

// watch re-runs the analysis whenever path changes, until ctx is
// cancelled. Threshold exit codes are ignored in watch mode; each run
// only prints its report.
func watch(ctx context.Context, path string, run func() (int, error)) error {
	if _, err := run(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("fsnotify unavailable, falling back to polling", "error", err)
		return watchPolling(ctx, path, run)
	}
	defer watcher.Close()

	// Watch the directory; editors often replace the file on save, which
	// would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		slog.Warn("fsnotify watch failed, falling back to polling", "error", err)
		return watchPolling(ctx, path, run)
	}

	base := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Info("prompt changed, re-analyzing", "path", path)
			if _, err := run(); err != nil {
				slog.Error("analysis failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Usually recoverable; log and keep watching.
			slog.Warn("watch error", "error", err)
		}
	}
}

// watchPolling compares modification times on a fixed interval.
func watchPolling(ctx context.Context, path string, run func() (int, error)) error {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(lastMod) {
				lastMod = mod
				slog.Info("prompt changed, re-analyzing", "path", path)
				if _, err := run(); err != nil {
					slog.Error("analysis failed", "error", err)
				}
			}
		}
	}
}
