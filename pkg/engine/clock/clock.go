// Package clock measures elapsed real time between simulation ticks.
package clock

import "time"

// Clock reports the seconds elapsed between successive Delta calls.
// The first call starts the clock and returns 0, so time spent before the
// first tick (loading, window creation) never turns into a movement jump.
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// New creates a clock reading the wall clock.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithSource creates a clock reading an injected time source.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Delta returns the seconds since the previous call.
func (c *Clock) Delta() float32 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}

// Reset makes the next Delta return 0 again.
func (c *Clock) Reset() {
	c.started = false
}
