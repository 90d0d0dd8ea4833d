// Package clock abstracts timer scheduling so that debounce behavior can be
// tested deterministically. Production code injects Real(); tests inject
// Fake() and advance time explicitly.
package clock

import "time"

// Clock is the minimal timer surface this module schedules against.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for duration d, then calls f in its own goroutine
	// (real clock) or synchronously during Advance (fake clock). The
	// returned Timer can cancel the pending call with Stop. A non-positive
	// d still defers f; it is never invoked before AfterFunc returns.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer represents a single scheduled callback.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the timer from firing. Returns true if the call stopped the
// timer, false if it already fired or was already stopped. A false return
// does not guarantee the callback has finished running; callers that need
// that guarantee must gate the callback themselves.
func (t *Timer) Stop() bool { return t.stopFunc() }
