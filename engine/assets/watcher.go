package assets

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/animath/engine/config"
	"github.com/spaghettifunk/animath/engine/core"
)

// OnSceneChange receives the reloaded scene, or the error that prevented
// loading it.
type OnSceneChange func(scene *config.Scene, err error)

/**
 * @brief Watches a scene file and reloads it on every write or create.
 * The parent directory is watched rather than the file itself so editors
 * that save by renaming a temporary file are still noticed.
 */
type Watcher struct {
	path     string
	onChange OnSceneChange
	debounce time.Duration

	mutex    sync.Mutex
	fsnotify *fsnotify.Watcher
	isClosed bool
	done     chan struct{}
	stopped  chan struct{}
	reloads  int
}

func NewWatcher(path string, onChange OnSceneChange) (*Watcher, error) {
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
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: 50 * time.Millisecond,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	core.LogDebug("Watching %s for changes.", abs)
	return w, nil
}

// Reloads returns how many times the scene was reloaded.
func (w *Watcher) Reloads() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.reloads
}

// Close stops the watcher. A second call returns ErrWatcherClosed.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	defer close(w.stopped)

	// Writes usually arrive as several events; coalesce them.
	var pending <-chan time.Time
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
				pending = time.After(w.debounce)
			}

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("scene watcher: %s", err.Error())

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

func (w *Watcher) reload() {
	scene, err := config.Load(w.path)
	if err != nil {
		core.LogWarn("Reloading %s failed: %s", w.path, err.Error())
	} else {
		core.LogInfo("Reloaded %s.", w.path)
	}
	w.mutex.Lock()
	w.reloads++
	w.mutex.Unlock()
	if w.onChange != nil {
		w.onChange(scene, err)
	}
}
