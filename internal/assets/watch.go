package assets

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports writes to a single file. The parent directory is watched so that
// editors which save by rename are still seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	name    string
	changed chan struct{}
	done    chan struct{}
}

// WatchFile starts watching path. The directory must exist; the file need not.
func WatchFile(path string) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("assets: %w", err)
	}
	fw := &FileWatcher{
		watcher: w,
		name:    filepath.Base(path),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go fw.run()
	return fw, nil
}

func (fw *FileWatcher) run() {
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != fw.name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case fw.changed <- struct{}{}:
			default:
			}
		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Changed reports, without blocking, whether the file changed since the last call.
func (fw *FileWatcher) Changed() bool {
	select {
	case <-fw.changed:
		return true
	default:
		return false
	}
}

// Close stops watching.
func (fw *FileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
