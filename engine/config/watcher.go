package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/clay/engine/core"
)

// Watcher reloads a scene file whenever it is written or replaced.
// Successfully validated configs arrive on Configs, failures on Errors.
type Watcher struct {
	path string

	done     chan struct{}
	closing  sync.Once
	wg       sync.WaitGroup
	fsnotify *fsnotify.Watcher
	configs  chan *Config
	errors   chan error
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

	// watch the directory so editors that replace the file are still seen
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		core.LogError("failed to watch %s: %s", abs, err)
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		configs:  make(chan *Config),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Configs() <-chan *Config {
	return w.configs
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes both channels. It is safe to call twice.
func (w *Watcher) Close() error {
	err := errors.New("watcher already closed")
	w.closing.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = nil
	})
	return err
}

func (w *Watcher) start() {
	defer func() {
		w.fsnotify.Close()
		close(w.configs)
		close(w.errors)
		w.wg.Done()
	}()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			core.LogDebug("config %s changed (%s)", e.Name, e.Op)
			cfg, err := Load(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			select {
			case w.configs <- cfg:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			w.sendError(err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	case <-w.done:
	}
}
