package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce collapses the burst of events an editor save produces.
const defaultDebounce = 200 * time.Millisecond

// watch generates once, then again after every change of the schema file,
// until ctx is done. Generation failures are logged and watching goes on.
func watch(ctx context.Context, r *runner, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory (more reliable for editors that do atomic saves)
	if err := w.Add(filepath.Dir(r.cfg.Schema)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}

	r.logger.Info().Str("schema", r.cfg.Schema).Msg("watching schema for changes")

	r.regenerate()

	filename := filepath.Base(r.cfg.Schema)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			// React to write or create (atomic save = create)
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			r.logger.Debug().
				Str("event", event.Op.String()).
				Str("file", event.Name).
				Msg("schema changed")

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}

			fire = timer.C

		case <-fire:
			fire = nil

			r.regenerate()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			r.logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

func (r *runner) regenerate() {
	if _, err := r.generate(); err != nil {
		r.logger.Error().Err(err).Msg("generation failed")
	}
}
