// Package watch calls back when the config file changes on disk; the CLI
// uses it to re-run validation.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/logfields"
)

// DefaultDebounce coalesces editor save bursts into one reload.
const DefaultDebounce = 500 * time.Millisecond

// ReloadFunc is called once per debounced change of the watched file.
type ReloadFunc func(ctx context.Context) error

// Watcher monitors one config file and calls a ReloadFunc after it changes.
type Watcher struct {
	path     string
	reload   ReloadFunc
	debounce time.Duration
	logger   *slog.Logger

	watcher  *fsnotify.Watcher
	trigger  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New creates a Watcher for path. Nothing is watched until Start.
func New(path string, reload ReloadFunc, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve config path").
			WithContext("path", path).
			Build()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRuntime, "failed to create file watcher").Build()
	}

	w := &Watcher{
		path:     abs,
		reload:   reload,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		watcher:  fw,
		trigger:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching the file's directory; renames onto the file count
// as changes.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch config directory").
			WithContext("dir", dir).
			Build()
	}
	w.logger.Info("Watching configuration", logfields.ConfigPath(w.path))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends watching and waits for the loops to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			switch {
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create), ev.Has(fsnotify.Rename):
				w.logger.Debug("Config change detected", logfields.File(ev.Name), slog.String("op", ev.Op.String()))
				w.notify()
			case ev.Has(fsnotify.Remove):
				w.logger.Warn("Config file removed", logfields.File(ev.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// reloadLoop serializes reloads. A change seen during a reload re-arms the
// timer.
func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-w.trigger:
			timer.Reset(w.debounce)
		case <-timer.C:
			w.run(ctx)
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	start := time.Now()
	w.logger.Info("Reloading configuration", logfields.ConfigPath(w.path))
	if err := w.reload(ctx); err != nil {
		w.logger.Error("Failed to reload configuration", logfields.ConfigPath(w.path), logfields.Error(err))
		return
	}
	w.logger.Info("Configuration reloaded", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
}
