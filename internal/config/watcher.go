package config

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces bursts of file events (editors often write a
// config file several times in quick succession).
const reloadDebounce = 300 * time.Millisecond

// Watcher reloads the config file when it changes and notifies subscribers.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher
	stop chan struct{}

	mu       sync.Mutex
	handlers []func(*Config)
}

// Watch starts watching the config file. Subscribers registered with OnChange
// receive every successfully reloaded config.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{path: path, fsw: fsw, stop: make(chan struct{})}
	go w.loop()

	slog.Info("config watcher started", "path", path)
	return w, nil
}

// OnChange registers a handler called with each reloaded config.
func (w *Watcher) OnChange(h func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Close stops watching.
func (w *Watcher) Close() {
	close(w.stop)
	w.fsw.Close()
}

func (w *Watcher) loop() {
	var pending *time.Timer

	for {
		select {
		case <-w.stop:
			if pending != nil {
				pending.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(reloadDebounce, w.reload)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Error("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		slog.Error("config reload failed", "path", w.path, "error", err)
		return
	}

	w.mu.Lock()
	handlers := append(([]func(*Config))(nil), w.handlers...)
	w.mu.Unlock()

	for _, h := range handlers {
		h(cfg)
	}
	slog.Info("config reloaded", "path", w.path)
}
