package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima-actors/engine/core"
)

// Watcher reloads a config file whenever it changes on disk and publishes
// every successfully validated result on Updates.
type Watcher struct {
	path string

	fsnotify *fsnotify.Watcher
	updates  chan *Config
	done     chan struct{}
	stopped  chan struct{}
	once     sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file instead of writing to it.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		updates:  make(chan *Config, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	return w, nil
}

// Updates delivers reloaded configs. Only the most recent one is kept if the
// reader falls behind. The channel is closed by Close.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		<-w.stopped
		close(w.updates)
		err = w.fsnotify.Close()
	})
	return err
}

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		if errors.Is(err, core.ErrInvalidConfig) {
			core.LogWarn("ignoring config change: %s", err)
		} else {
			core.LogDebug("config not readable yet: %s", err)
		}
		return
	}
	core.LogInfo("config %s reloaded", w.path)

	// drop a stale update nobody picked up yet
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
