// Package watch re-runs a render whenever its input file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = 50 * time.Millisecond

type Options struct {
	// Debounce groups bursts of events into one call; editors often
	// write a file in several steps.
	Debounce time.Duration
	Logger   *zap.Logger
}

// Run calls fn once, then again after every write to path, until ctx is
// done. Errors from fn are logged and do not stop the watch.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file are still noticed.
func Run(ctx context.Context, path string, fn func() error, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	base := filepath.Base(path)

	run := func() {
		if err := fn(); err != nil {
			log.Error("render failed", zap.String("file", path), zap.Error(err))
		}
	}
	run()

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
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
			log.Debug("file changed", zap.String("file", path), zap.Stringer("op", event.Op))
			timer.Reset(debounce)

		case <-timer.C:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
