package profile

import (
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

// Watcher serves the latest good parse of the profile file and
// re-loads it when the file is written. A parse failure keeps the
// previous profile in place.
type Watcher struct {
	path    string
	current atomic.Pointer[Profile]
	watcher *fsnotify.Watcher
	logger  *logger_i.Logger
}

func NewWatcher(path string) (*Watcher, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fw,
		logger:  logger_i.NewLogger("ProfileWatcher"),
	}
	w.current.Store(p)
	go w.loop()
	return w, nil
}

func (w *Watcher) Current() *Profile {
	return w.current.Load()
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p, err := Load(w.path)
			if err != nil {
				w.logger.Error("Profile reload failed, keeping previous", "error", err)
				continue
			}
			w.current.Store(p)
			w.logger.Info("Profile reloaded")

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}
