package ui

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to one file. It watches the parent directory so that editors which
// save by rename are still seen.
type Watcher struct {
	w    *fsnotify.Watcher
	path string
}

// Watch starts watching path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{w: w, path: abs}, nil
}

// Changed drains pending events without blocking and reports whether any touched the file.
// Watcher errors are returned after the events seen so far.
func (w *Watcher) Changed() (bool, error) {
	changed := false
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return changed, nil
			}
			if filepath.Clean(ev.Name) == w.path && ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				changed = true
			}
		case err, ok := <-w.w.Errors:
			if ok && err != nil {
				return changed, err
			}
		default:
			return changed, nil
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}

// ReloadIfChanged reloads the stylesheet from the watched file when it changed since the last
// call. It returns whether a reload happened.
func (e *Engine) ReloadIfChanged(w *Watcher) (bool, error) {
	changed, err := w.Changed()
	if err != nil || !changed {
		return false, err
	}
	if err := e.LoadCSS(w.path); err != nil {
		return false, err
	}
	return true, nil
}
