// Package refresh coalesces preview invalidation requests behind a single
// trailing debounce window, so rapid edit bursts trigger one re-render
// instead of one per keystroke.
package refresh

import (
	"sync"
	"time"
)

// DefaultDelay is the debounce window for preview invalidation.
const DefaultDelay = 300 * time.Millisecond

// Invalidator coalesces Update calls into change emissions. The debounce is
// shared across all documents, not per document: while a timer is armed,
// further Update calls are no-ops and their URIs are dropped. Each window
// produces exactly one emission carrying the URI of the call that armed the
// timer. This mirrors long-standing observed behaviour and is deliberately
// left as is; see DESIGN.md.
type Invalidator struct {
	mu      sync.Mutex
	delay   time.Duration
	emit    func(uri string)
	waiting bool
	pending string
	timer   *time.Timer
	closed  bool
}

// NewInvalidator creates an Invalidator that calls emit once per debounce
// window. A non-positive delay falls back to DefaultDelay.
func NewInvalidator(delay time.Duration, emit func(uri string)) *Invalidator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Invalidator{delay: delay, emit: emit}
}

// Update requests that the preview identified by uri be treated as stale.
// The first call in a window arms a one-shot timer; later calls inside the
// same window do nothing (the timer is not reset).
func (i *Invalidator) Update(uri string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed || i.waiting {
		return
	}
	i.waiting = true
	i.pending = uri
	i.timer = time.AfterFunc(i.delay, i.fire)
}

func (i *Invalidator) fire() {
	i.mu.Lock()
	if i.closed || !i.waiting {
		i.mu.Unlock()
		return
	}
	i.waiting = false
	uri := i.pending
	i.mu.Unlock()

	i.emit(uri)
}

// Pending reports whether a timer is currently armed.
func (i *Invalidator) Pending() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.waiting
}

// Close stops an armed timer without emitting. Further Update calls are
// ignored.
func (i *Invalidator) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.closed = true
	i.waiting = false
	if i.timer != nil {
		i.timer.Stop()
	}
}
