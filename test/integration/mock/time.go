package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for scenarios that depend on "today".
// The zero state falls through to the wall clock.
type Clock struct {
	mu      sync.Mutex
	current time.Time
	pinned  bool
}

func NewClock() *Clock {
	return &Clock{}
}

// SetCurrentTime pins the clock to a fixed moment.
func (c *Clock) SetCurrentTime(currentTime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = currentTime
	c.pinned = true
}

// Reset unpins the clock.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinned = false
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinned {
		return c.current
	}
	return time.Now().UTC()
}
