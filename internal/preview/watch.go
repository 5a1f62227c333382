package preview

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds the site when watched paths change. Events are
// debounced so a burst of editor writes triggers one rebuild. A failing
// rebuild is logged and the previous output keeps serving.
type Watcher struct {
	rebuild  func() error
	log      *slog.Logger
	debounce time.Duration
}

func NewWatcher(rebuild func() error, log *slog.Logger) *Watcher {
	return &Watcher{
		rebuild:  rebuild,
		log:      log,
		debounce: 500 * time.Millisecond,
	}
}

// Watch monitors the directories containing the given paths until ctx is
// canceled. Watching directories rather than files survives the
// replace-on-save strategy most editors use.
func (w *Watcher) Watch(ctx context.Context, paths ...string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	watched := make(map[string]bool)
	for _, p := range paths {
		dir := filepath.Dir(p)
		if watched[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	w.log.Info("watching for changes", "dirs", len(watched))

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", "error", err)

		case <-timerCh:
			timer = nil
			timerCh = nil
			if err := w.rebuild(); err != nil {
				w.log.Error("rebuild failed", "error", err)
				continue
			}
			w.log.Info("site rebuilt")
		}
	}
}
