// Package watch notifies when the viewed file changes on disk.
package watch

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a single file. Editors often replace files by
// rename, so the parent directory is watched and events are filtered by
// name.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	logger  *log.Logger
	changes chan struct{}
}

// New starts watching path. Watch errors are logged; they do not stop the
// watcher.
func New(path string, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{path: abs, fsw: fsw, logger: logger, changes: make(chan struct{}, 1)}
	go w.loop()
	return w, nil
}

// Changes delivers a token per batch of writes to the file. The channel is
// never closed while the watcher is open.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce bursts: drop the token if one is already pending.
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "path", w.path, "err", err)
		}
	}
}
