package clock

import "time"

// Clock reports monotonic simulation time as the elapsed duration since the
// simulation started. Every cooldown and timer in the game compares against it.
type Clock interface {
	Now() time.Duration
}

// SimClock is a fixed-step game clock. It only moves when Advance is called,
// and Advance is a no-op while the clock is paused, so a paused game freezes
// every timer along with the tick.
type SimClock struct {
	now    time.Duration
	step   time.Duration
	ticks  uint64
	paused bool
}

// NewSimClock creates a clock that advances by step per tick.
func NewSimClock(step time.Duration) *SimClock {
	return &SimClock{step: step}
}

// Now returns current game time.
func (c *SimClock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

// Step returns the fixed tick duration.
func (c *SimClock) Step() time.Duration {
	if c == nil {
		return 0
	}
	return c.step
}

// Ticks returns the number of ticks advanced so far.
func (c *SimClock) Ticks() uint64 {
	if c == nil {
		return 0
	}
	return c.ticks
}

// Tick advances the clock by one fixed step. It reports false when paused.
func (c *SimClock) Tick() bool {
	return c.Advance(c.Step())
}

// Advance moves game time forward by d. It reports false when paused.
func (c *SimClock) Advance(d time.Duration) bool {
	if c == nil || c.paused || d < 0 {
		return false
	}
	c.now += d
	c.ticks++
	return true
}

// Pause stops game time advancement.
func (c *SimClock) Pause() {
	if c != nil {
		c.paused = true
	}
}

// Resume continues game time advancement.
func (c *SimClock) Resume() {
	if c != nil {
		c.paused = false
	}
}

// Toggle flips the pause state and returns the new state.
func (c *SimClock) Toggle() bool {
	if c == nil {
		return false
	}
	c.paused = !c.paused
	return c.paused
}

// IsPaused returns current pause state.
func (c *SimClock) IsPaused() bool {
	return c != nil && c.paused
}
