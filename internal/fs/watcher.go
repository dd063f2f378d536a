package fs

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kk-code-lab/twinpane/internal/logging"
	"github.com/sirupsen/logrus"
)

const watchDebounce = 150 * time.Millisecond

// Watcher follows a single directory and reports changes to it, debounced so
// a burst of events produces one notification.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	dir     string
	timer   *time.Timer
	notify  func(dir string)
	log     logrus.FieldLogger
	done    chan struct{}
	stopped bool
}

// NewWatcher starts a watcher that calls notify from its own goroutine
// whenever the watched directory changes.
func NewWatcher(notify func(dir string), logger logrus.FieldLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create directory watcher: %w", err)
	}
	w := &Watcher{
		fsw:    fsw,
		notify: notify,
		log:    logging.OrDiscard(logger),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch replaces the watched directory with dir.
func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped || dir == w.dir {
		return nil
	}
	if w.dir != "" {
		_ = w.fsw.Remove(w.dir)
	}
	w.dir = ""
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dir = dir
	w.log.WithField("dir", dir).Debug("watching directory")
	return nil
}

// Close stops the watcher. Pending notifications are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Write) {
				w.schedule(filepath.Dir(ev.Name))
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watcher error")
		}
	}
}

func (w *Watcher) schedule(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped || dir != w.dir {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, func() {
		w.mu.Lock()
		current, stopped := w.dir, w.stopped
		w.mu.Unlock()
		if !stopped && current == dir && w.notify != nil {
			w.notify(dir)
		}
	})
}
