// The run clock: owns the monotonic reference point every log timestamp is
// measured from.

package sim

import "time"

// Clock measures elapsed time from a single Start instant.
// The time source is injectable for tests and defaults to time.Now
// (monotonic in Go).
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock creates a Clock reading from time.Now.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockAt creates a Clock reading from the given time source.
func NewClockAt(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start records the reference instant t0.
func (c *Clock) Start() {
	c.start = c.now()
}

// Elapsed returns now - t0.
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}
