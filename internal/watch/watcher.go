// Package watch reloads a settings document whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"keyremap/internal/diagnostic"
	"keyremap/internal/remap"
)

// DefaultDebounce groups the burst of events an editor produces on save.
const DefaultDebounce = 100 * time.Millisecond

// Result is one load of the watched document.
type Result struct {
	Settings    *remap.Settings
	Diagnostics *diagnostic.Diagnostics
	Err         error
}

// Watcher loads a settings file once and again after every change.
type Watcher struct {
	path     string
	onChange func(Result)
	debounce time.Duration
	logger   zerolog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger replaces the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// New returns a Watcher for path that reports every load to onChange.
func New(path string, onChange func(Result), opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   log.Logger,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run reports the current document, then watches its directory until ctx
// is done. The directory is watched rather than the file so that editors
// which save by renaming a temporary file are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("watch: resolve %s: %w", w.path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}

	w.logger.Info().Str("path", abs).Msg("watching settings")
	w.reload(abs)

	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != abs {
				continue
			}

			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				w.logger.Debug().Str("op", ev.Op.String()).Msg("settings changed")
				fire = time.After(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn().Err(err).Msg("watch error")

		case <-fire:
			fire = nil
			w.reload(abs)
		}
	}
}

func (w *Watcher) reload(path string) {
	s, err := remap.LoadFile(path)
	if err != nil {
		w.logger.Error().Err(err).Str("path", path).Msg("reload failed")
		w.onChange(Result{Err: err})

		return
	}

	diags := remap.Validate(s)
	w.logger.Info().
		Int("rules", s.Count()).
		Int("errors", len(diags.Errors)).
		Int("warnings", len(diags.Warnings)).
		Msg("settings loaded")

	w.onChange(Result{Settings: s, Diagnostics: diags})
}
