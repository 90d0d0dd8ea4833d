// Package filterlist provides FilteredList, a widget that owns a search
// entry, debounces keystrokes, filters a caller-supplied collection by
// free-text match, and renders the survivors through a caller-supplied
// delegate keyed for stable identity.
package filterlist

import (
	"sync"
	"time"

	"github.com/soder/veld/internal/clock"
)

// Debouncer holds at most one pending action. Scheduling a new action
// unconditionally cancels the previous one before arming, so a burst of
// schedules inside the delay window results in exactly one firing, with the
// last action. Cancel is final for anything pending: an already-fired timer
// whose action has not run yet is suppressed by the generation check.
type Debouncer struct {
	clk clock.Clock

	mu         sync.Mutex
	pending    *clock.Timer
	generation uint64
}

// NewDebouncer creates a debouncer that schedules against the given clock.
func NewDebouncer(clk clock.Clock) *Debouncer {
	return &Debouncer{clk: clk}
}

// Schedule arms fn to run after delay, cancelling any action still pending
// from an earlier Schedule. fn never runs before Schedule returns, even for
// a zero delay.
func (d *Debouncer) Schedule(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	d.generation++
	gen := d.generation
	d.pending = d.clk.AfterFunc(delay, func() {
		d.mu.Lock()
		if gen != d.generation {
			// Superseded or cancelled between firing and running.
			d.mu.Unlock()
			return
		}
		d.pending = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops any pending action. Mandatory on owner teardown: a timer that
// outlives its owner would mutate state that no longer has a widget behind
// it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.generation++
}
