package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls fn once and then again whenever the file at path is written,
// until ctx is done. Errors from fn are logged, not returned.
//
// The directory is watched rather than the file, so that editors that save by
// renaming a new file into place are noticed.
func watch(ctx context.Context, path string, fn func() error, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	name, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(name)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	if err := fn(); err != nil {
		logger.Error("render failed", "scene", path, "err", err)
	}
	logger.Info("watching scene", "scene", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if evName, err := filepath.Abs(event.Name); err != nil || evName != name {
				continue
			}
			logger.Debug("scene changed", "scene", path, "op", event.Op)
			if err := fn(); err != nil {
				logger.Error("render failed", "scene", path, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		}
	}
}
