package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeKind tells a game spec edit from a pattern script edit.
type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangePattern
)

// Change is a debounced notification for one edited file.
type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to yaml specs and tengo patterns on disk. Repeated
// events for the same file inside Debounce are collapsed into one.
type Watcher struct {
	Debounce time.Duration

	watcher *fsnotify.Watcher
	logger  *zap.Logger
	changes chan Change
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(logger *zap.Logger, dirs ...string) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
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
		Debounce: 100 * time.Millisecond,
		watcher:  w,
		logger:   logger,
		changes:  make(chan Change, 16),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Changes is closed once the watcher stops.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)

	seen := debouncer{window: w.Debounce, last: make(map[string]time.Time)}
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind, ok := classify(event.Name)
			if !ok {
				continue
			}
			if !seen.allow(event.Name, time.Now()) {
				continue
			}
			select {
			case w.changes <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("prefab watcher error", zap.Error(err))
		case <-w.closeCh:
			return
		}
	}
}

// debouncer remembers when each path last fired. Entries older than the
// window are dropped on every call so the map only holds recent paths.
type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func (d *debouncer) allow(path string, now time.Time) bool {
	for p, t := range d.last {
		if now.Sub(t) >= d.window {
			delete(d.last, p)
		}
	}
	if _, recent := d.last[path]; recent {
		return false
	}
	d.last[path] = now
	return true
}

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeSpec, true
	case ".tengo":
		return ChangePattern, true
	default:
		return 0, false
	}
}
