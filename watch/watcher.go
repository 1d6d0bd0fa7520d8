// Package watch re-runs a build step whenever its input file changes.
// It watches the file's directory rather than the file itself, because
// editors commonly replace files instead of writing them in place.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures a Watcher.
type Config struct {
	// Path is the input file to watch.
	Path string

	// Debounce is how long to wait for more changes before rebuilding.
	// Zero means 500ms.
	Debounce time.Duration

	// Logger for watch events. Nil means slog.Default.
	Logger *slog.Logger
}

// Watcher triggers a rebuild callback on input changes. The callback's
// errors are logged and watching continues; only watcher-level failures
// stop the run loop.
type Watcher struct {
	path     string
	dir      string
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
	rebuild  func(context.Context) error
}

// New creates a watcher for one input file.
func New(cfg Config, rebuild func(context.Context) error) (*Watcher, error) {
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", cfg.Path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := cfg.Debounce
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
		rebuild:  rebuild,
	}, nil
}

// Run blocks, rebuilding on each debounced change to the input file,
// until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("Watching for changes", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.rebuild(ctx); err != nil {
				w.logger.Error("Rebuild failed", "path", w.path, "error", err)
			} else {
				w.logger.Info("Rebuilt", "path", w.path)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", "error", err)
		}
	}
}

// Close releases the underlying file system watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
