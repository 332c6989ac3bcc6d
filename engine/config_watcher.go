package engine

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/lineage/engine/core"
)

// ConfigWatcher reloads an ApplicationConfig whenever its file changes.
// Reloaded configs are delivered on Reloads; when the consumer falls behind
// only the newest one is kept.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	reloads chan *ApplicationConfig
	done    chan struct{}
	wg      sync.WaitGroup
}

func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors replace the file on save, so the directory is watched
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &ConfigWatcher{
		path:    abs,
		watcher: fsWatch,
		reloads: make(chan *ApplicationConfig, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	core.LogDebug("watching %s for changes", abs)
	return w, nil
}

func (w *ConfigWatcher) Reloads() <-chan *ApplicationConfig {
	return w.reloads
}

func (w *ConfigWatcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path || e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			cfg, err := LoadApplicationConfig(w.path)
			if err != nil {
				// half written files are common, the next write event retries
				core.LogWarn("config reload failed: %s", err)
				continue
			}
			w.publish(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err)

		case <-w.done:
			return
		}
	}
}

func (w *ConfigWatcher) publish(cfg *ApplicationConfig) {
	select {
	case w.reloads <- cfg:
	default:
		select {
		case <-w.reloads:
		default:
		}
		w.reloads <- cfg
	}
}

// Close stops watching. Reloads is not closed.
func (w *ConfigWatcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
