package clock

import "time"

// Clock is the time source injected into interactors and queries so that
// creation timestamps and elapsed-period ratios are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() Clock {
	return SystemClock{}
}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a settable clock for tests and replayed batches.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a FixedClock frozen at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now returns the frozen time.
func (f *FixedClock) Now() time.Time {
	return f.current
}

// Set moves the clock to t.
func (f *FixedClock) Set(t time.Time) {
	f.current = t
}

// Advance moves the clock forward by d.
func (f *FixedClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}

// Date builds a UTC midnight timestamp, the granularity program periods use.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
