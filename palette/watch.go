// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls a function whenever a palette file changes.
type Watcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

// Watch calls changed after every write to the palette file,
// from a separate goroutine. The directory is watched, so editors
// that replace the file on save still count as a change.
func Watch(filename string, changed func()) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{w: fw, done: make(chan struct{})}
	go func() {
		defer close(w.done)
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) == abs && ev.Has(fsnotify.Write|fsnotify.Create) {
					changed()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				slog.Warn("palette watch", "file", abs, "err", err)
			}
		}
	}()
	return w, nil
}

// Close stops watching and waits for the watch goroutine to end.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}
