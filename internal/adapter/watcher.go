package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/makeparse/internal/model"
)

// DefaultDebounce is how long a burst of file events is coalesced before the
// change callback runs.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch blocks until ctx is done, calling onChange after the file at path
	// is written, created or renamed into place. An error from onChange stops
	// the watch and is returned.
	Watch(ctx context.Context, path m.Path, onChange func() error) error
}

// LocalFileWatcher watches files through fsnotify.
type LocalFileWatcher struct {
	debounce time.Duration
	logger   *slog.Logger
}

// NewLocalFileWatcher constructs a LocalFileWatcher. A non-positive debounce
// selects DefaultDebounce.
func NewLocalFileWatcher(debounce time.Duration, logger *slog.Logger) *LocalFileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &LocalFileWatcher{debounce: debounce, logger: logger}
}

// Watch implements FileWatcher. The parent directory is watched rather than
// the file itself, so editors that save by replacing the file keep being
// tracked.
func (w *LocalFileWatcher) Watch(ctx context.Context, path m.Path, onChange func() error) error {
	target, err := filepath.Abs(string(path))
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

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

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target || !isContentEvent(event) {
				continue
			}

			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watching %s: %w", path, err)

		case <-fire:
			fire = nil

			if err := onChange(); err != nil {
				return err
			}
		}
	}
}

func isContentEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
