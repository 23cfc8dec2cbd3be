package transcript

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// debounceDelay collects bursts of editor writes into a single reload.
var debounceDelay = 500 * time.Millisecond

// Watch calls fn with the reloaded transcript each time the file at path
// changes. The parent directory is watched so that editors which replace the
// file by rename are still seen. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, fn func(Transcript)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "failed to resolve transcript path")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}

	log.WithFields(log.Fields{
		"path": abs,
	}).Info("watching transcript")

	var (
		timer *time.Timer
		fire  <-chan time.Time
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

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			t, err := Load(abs)
			if err != nil {
				log.WithFields(log.Fields{
					"path": abs,
					"err":  err,
				}).Warn("failed to reload transcript")
				continue
			}
			fn(t)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithFields(log.Fields{
				"err": err,
			}).Warn("watch error")
		}
	}
}
