package assets

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/brickforge/engine/core"
)

const DefaultDebounce = 150 * time.Millisecond

// Watcher reports changes to a single file. It watches the parent
// directory so that editors which save by renaming a temp file over the
// target are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(path string)

	fsnotify *fsnotify.Watcher
	mutex    sync.Mutex
	isClosed bool
}

func NewWatcher(path string, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		fsnotify: fsWatch,
	}, nil
}

func (w *Watcher) Path() string {
	return w.path
}

// Run delivers change notifications until ctx is cancelled. Bursts of
// events closer together than the debounce interval produce one callback.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return nil
			}
			if !w.matches(e) {
				continue
			}
			core.LogDebug("watcher: %s", e)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return nil
			}
			core.LogError(err.Error())

		case <-fire:
			fire = nil
			if w.onChange != nil {
				w.onChange(w.path)
			}
		}
	}
}

func (w *Watcher) matches(e fsnotify.Event) bool {
	if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}
	name, err := filepath.Abs(e.Name)
	if err != nil {
		return false
	}
	return name == w.path
}

// Close stops the underlying watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	if err := w.fsnotify.Close(); err != nil && !errors.Is(err, fsnotify.ErrClosed) {
		return err
	}
	return nil
}
