package settings

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the bursts of events editors emit for one save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads the settings file when it changes on disk and reports the
// new settings when their fingerprint differs from the last known one.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher

	updates chan Settings
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup

	mu   sync.Mutex
	last string
}

// Watch starts watching path. current is the state the caller already has;
// reloading an identical file is not reported.
func Watch(path string, current Settings, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	// Watch the directory: atomic saves replace the file and drop a file watch.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
		updates:  make(chan Settings, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		last:     Fingerprint(current),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Updates delivers reloaded settings. Only the newest pending value is kept.
func (w *Watcher) Updates() <-chan Settings { return w.updates }

// Errors delivers load failures. Only the newest pending error is kept.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Remember records s as known, so the event caused by saving it is ignored.
func (w *Watcher) Remember(s Settings) {
	w.mu.Lock()
	w.last = Fingerprint(s)
	w.mu.Unlock()
}

func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			sendLatest(w.errors, err)
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		sendLatest(w.errors, err)
		return
	}
	fp := Fingerprint(s)

	w.mu.Lock()
	changed := fp != w.last
	w.last = fp
	w.mu.Unlock()

	if changed {
		sendLatest(w.updates, s)
	}
}

// sendLatest replaces any value still waiting in ch with v.
func sendLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
