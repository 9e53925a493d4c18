package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period after the last event for a file before the
// file is reported; editors often write a file several times on save.
const debounce = 100 * time.Millisecond

// Watcher reports edits to scene and script files. Events carries the changed
// path; the game loop polls it between ticks with Pending.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs (non-recursively).
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Pending drains the queued file names without blocking.
func (w *Watcher) Pending() []string {
	var out []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return out
			}
			out = append(out, name)
		default:
			return out
		}
	}
}

// PendingErrors drains the queued watcher errors without blocking.
func (w *Watcher) PendingErrors() []error {
	var out []error
	for {
		select {
		case err, ok := <-w.Errors:
			if !ok {
				return out
			}
			out = append(out, err)
		default:
			return out
		}
	}
}

func (w *Watcher) run() {
	defer close(w.done)
	timers := make(map[string]*time.Timer)
	fire := make(chan string)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSceneFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			if t, ok := timers[event.Name]; ok && t.Stop() {
				t.Reset(debounce)
				continue
			}
			name := event.Name
			timers[name] = time.AfterFunc(debounce, func() {
				select {
				case fire <- name:
				case <-w.closeCh:
				}
			})
		case name := <-fire:
			delete(timers, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tengo")
}
