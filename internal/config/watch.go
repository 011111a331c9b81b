package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reload is delivered by a Watcher after the watched file changes.
// Err is set when the new contents could not be loaded; the previous
// configuration stays in effect in that case.
type Reload struct {
	Config Config
	Err    error
}

// Watcher reloads a config file whenever it is written.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Reload
}

// Watch starts watching path. The parent directory is watched rather than
// the file itself so that editors which save by rename are picked up.
func Watch(path string) (*Watcher, error) {
	path = filepath.Clean(ExpandHome(path))

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    path,
		watcher: fw,
		updates: make(chan Reload, 1),
	}
	go w.loop()
	return w, nil
}

// Updates returns the reload channel. It is closed by Close.
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.updates)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := loadFile(w.path)
			w.send(Reload{Config: cfg, Err: err})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: err})
		}
	}
}

// send delivers r, replacing an undelivered older reload.
func (w *Watcher) send(r Reload) {
	for {
		select {
		case w.updates <- r:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
