package pipeline

import (
	"math"
	"sync"
)

// Clock is the shared animation cursor the rendering boundary samples trip
// trajectories against. It advances by delta*rate per frame and wraps to
// zero past the loop length.
type Clock struct {
	mu      sync.Mutex
	current float64
	rate    float64
	loop    float64
}

// NewClock returns a Clock for the given loop length and rate.
func NewClock(loopLength, rate float64) *Clock {
	return &Clock{rate: rate, loop: loopLength}
}

// Advance moves the cursor by delta*rate, wrapping at the loop length, and
// returns the new cursor value.
func (c *Clock) Advance(delta float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = math.Mod(c.current+delta*c.rate, c.loop)
	return c.current
}

// Now returns the current cursor value in [0, loopLength).
func (c *Clock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// SetRate changes the animation speed.
func (c *Clock) SetRate(rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = rate
}
