// Package watcher reports debounced filesystem changes in a site project.
package watcher

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/folio/internal/core/ports"
)

// DefaultDebounceWindow is how long the debouncer waits for more changes.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces rapid changes into one batch. Repeated changes to a
// path keep only the latest operation.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]ports.ChangeOp
	timer    *time.Timer
	window   time.Duration
	callback func(changes []ports.Change)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(changes []ports.Change)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]ports.ChangeOp),
		window:   window,
		callback: callback,
	}
}

// Add records a change and restarts the window.
func (d *Debouncer) Add(c ports.Change) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[c.Path] = c.Op

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// drain returns the pending changes sorted by path and clears them.
// Callers must hold mu.
func (d *Debouncer) drain() []ports.Change {
	changes := make([]ports.Change, 0, len(d.pending))
	for path, op := range d.pending {
		changes = append(changes, ports.Change{Path: path, Op: op})
	}
	slices.SortFunc(changes, func(a, b ports.Change) int {
		return strings.Compare(a.Path, b.Path)
	})
	d.pending = make(map[string]ports.ChangeOp)
	return changes
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}
	changes := d.drain()
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback(changes)
	}
}

// Flush delivers pending changes immediately and blocks until the callback
// returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	changes := d.drain()
	d.mu.Unlock()

	if len(changes) > 0 && d.callback != nil {
		d.callback(changes)
	}
}
