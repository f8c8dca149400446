package storage

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher evicts cache entries as soon as a file in the data folder changes.
// The cache revalidates on read anyway; eviction only drops stale bytes early.
type Watcher struct {
	watcher *fsnotify.Watcher
	cache   *FileCache
	dir     string
	started bool
	done    chan struct{}
}

func NewWatcher(dir string, cache *FileCache) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err = w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{
		watcher: w,
		cache:   cache,
		dir:     dir,
		done:    make(chan struct{}),
	}, nil
}

// Start handles events until ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	w.started = true
	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					name := filepath.Clean(event.Name)
					w.cache.Invalidate(name)
					logrus.WithField("file", name).Debug("data file changed, cache entry evicted")
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logrus.WithError(err).Warn("data folder watcher error")
			}
		}
	}()
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if w.started {
		<-w.done
	}
	return err
}
