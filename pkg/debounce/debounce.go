// Package debounce provides a cancellable-timer debouncer: a burst of
// Trigger calls collapses into a single callback invocation after the
// configured quiet interval.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules fn to run delay after the most recent Trigger.
// A new Trigger while a run is pending cancels and reschedules it, so
// only the last of a burst fires (last-write-wins).
type Debouncer struct {
	delay time.Duration
	fn    func()

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// New creates a debouncer around fn
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger requests a run. Pending runs scheduled by earlier triggers are
// cancelled; stale timers that already fired into the scheduler are
// discarded by sequence-number comparison.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := seq != d.seq
		d.mu.Unlock()
		if stale {
			return
		}
		d.fn()
	})
}

// Stop cancels a pending run, if any
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
