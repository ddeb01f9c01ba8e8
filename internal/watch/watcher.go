// Package watch monitors a drop directory for new decision-matrix CSV
// files so each one can be ranked as it lands.
package watch

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event announces a CSV file that appeared or changed in the watched
// directory.
type Event struct {
	Path string // Absolute path of the changed file
}

// Watcher monitors a directory for dataset changes using fsnotify.
// Events are debounced so editors that write in several bursts produce a
// single ranking run.
type Watcher struct {
	Dir    string
	Events <-chan Event // Read-only external channel

	events  chan Event // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for the given drop directory.
func New(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Event, 16)
	w := &Watcher{
		Dir:     dir,
		Events:  ch,
		events:  ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the drop directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.events)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	const debounce = 200 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close.
				for file := range pending {
					w.events <- Event{Path: file}
				}
				return
			}

			if !IsDatasetFile(event.Name) {
				continue
			}

			// Removals are ignored: a vanished dataset needs no ranking.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.events <- Event{Path: file}
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

// IsDatasetFile reports whether name looks like an input dataset: a .csv
// that is not itself a ranked output.
func IsDatasetFile(name string) bool {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".csv") {
		return false
	}
	// Never re-rank our own output.
	return !strings.HasSuffix(base, ".ranked.csv")
}
