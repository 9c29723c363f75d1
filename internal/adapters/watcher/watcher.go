package watcher

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const batchChannelBuffer = 16

// Watcher implements ports.Watcher on fsnotify.
type Watcher struct {
	fsWatcher    *fsnotify.Watcher
	logger       ports.Logger
	fingerprints *Fingerprints
	debouncer    *Debouncer
	batches      chan []ports.Change

	root   string
	ignore []string

	closeOnce sync.Once
	done      chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a watcher that batches changes over window.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(domain.ErrWatcherFailed, err)
	}
	w := &Watcher{
		fsWatcher:    fw,
		logger:       logger,
		fingerprints: NewFingerprints(),
		batches:      make(chan []ports.Change, batchChannelBuffer),
		done:         make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Start begins watching root recursively.
func (w *Watcher) Start(ctx context.Context, root string, ignore []string) error {
	w.root = filepath.Clean(root)
	w.ignore = make([]string, 0, len(ignore))
	for _, p := range ignore {
		if !filepath.IsAbs(p) {
			p = filepath.Join(w.root, p)
		}
		w.ignore = append(w.ignore, filepath.Clean(p))
	}

	for dir := range w.walk(w.root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return errors.Join(domain.ErrWatcherFailed, zerr.With(err, "path", dir))
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop releases the watches. Pending changes are delivered before Changes ends.
func (w *Watcher) Stop() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsWatcher.Close()
		close(w.done)
	})
	return err
}

// Changes yields debounced batches until the watcher stops.
func (w *Watcher) Changes() iter.Seq[[]ports.Change] {
	return func(yield func([]ports.Change) bool) {
		for batch := range w.batches {
			if !yield(batch) {
				return
			}
		}
	}
}

func (w *Watcher) emit(changes []ports.Change) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.batches <- changes:
		return
	default:
	}
	select {
	case w.batches <- changes:
	case <-w.done:
	}
}

// Ignored reports whether path is hidden, outside root or under an ignore path.
func (w *Watcher) Ignored(path string) bool {
	path = filepath.Clean(path)
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return true
	}
	if rel != "." {
		for _, seg := range strings.Split(rel, string(filepath.Separator)) {
			if strings.HasPrefix(seg, ".") {
				return true
			}
		}
	}
	for _, ig := range w.ignore {
		if path == ig || isWithin(ig, path) {
			return true
		}
	}
	return false
}

// walk yields every directory under root that is not ignored and seeds the
// fingerprints of the files it passes.
func (w *Watcher) walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are skipped
			}
			if path != w.root && w.Ignored(path) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() {
				w.fingerprints.Seed(path)
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer func() {
		w.debouncer.Flush()
		w.mu.Lock()
		w.closed = true
		close(w.batches)
		w.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if w.Ignored(event.Name) {
		return
	}

	change, ok := convertEvent(event)
	if !ok {
		return
	}

	switch change.Op {
	case ports.ChangeCreate:
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			for dir := range w.walk(event.Name) {
				_ = w.fsWatcher.Add(dir)
			}
		} else {
			w.fingerprints.Changed(event.Name)
		}
	case ports.ChangeWrite:
		if !w.fingerprints.Changed(event.Name) {
			w.logger.Debug("ignoring write with unchanged content", "path", event.Name)
			return
		}
	case ports.ChangeRemove, ports.ChangeRename:
		w.fingerprints.Forget(event.Name)
	}

	w.debouncer.Add(change)
}

func convertEvent(event fsnotify.Event) (ports.Change, bool) {
	switch {
	case event.Op.Has(fsnotify.Write):
		return ports.Change{Path: event.Name, Op: ports.ChangeWrite}, true
	case event.Op.Has(fsnotify.Create):
		return ports.Change{Path: event.Name, Op: ports.ChangeCreate}, true
	case event.Op.Has(fsnotify.Remove):
		return ports.Change{Path: event.Name, Op: ports.ChangeRemove}, true
	case event.Op.Has(fsnotify.Rename):
		return ports.Change{Path: event.Name, Op: ports.ChangeRename}, true
	default:
		return ports.Change{}, false
	}
}

// isWithin reports whether path lies strictly below dir.
func isWithin(dir, path string) bool {
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}
