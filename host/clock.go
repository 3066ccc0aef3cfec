package host

import (
	"sync"
	"time"
)

// Clock supplies animation time in seconds since it was started or last reset.
type Clock struct {
	mu    sync.Mutex
	now   func() time.Time
	start time.Time
	scale float64
}

// NewClock starts a Clock that runs scale times faster than the wall clock.
func NewClock(scale float64) *Clock {
	c := &Clock{now: time.Now, scale: scale}
	c.start = c.now()
	return c
}

// Elapsed scaled seconds.
func (c *Clock) Elapsed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float32(c.now().Sub(c.start).Seconds() * c.scale)
}

// Reset the clock to zero.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = c.now()
}
