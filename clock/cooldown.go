package clock

import "time"

// Cooldown gates a rate-limited action: it is ready once now reaches ReadyAt.
type Cooldown struct {
	Duration time.Duration
	ReadyAt  time.Duration
}

// NewCooldown returns a cooldown that is ready immediately.
func NewCooldown(d time.Duration) Cooldown {
	return Cooldown{Duration: d}
}

// Ready reports whether the action may run at now.
func (c *Cooldown) Ready(now time.Duration) bool {
	return c == nil || now >= c.ReadyAt
}

// TryTrigger starts the cooldown if it is ready. Attempts made before ReadyAt
// are rejected and leave the cooldown untouched.
func (c *Cooldown) TryTrigger(now time.Duration) bool {
	if c == nil || !c.Ready(now) {
		return false
	}
	c.ReadyAt = now + c.Duration
	return true
}

// Remaining returns how long until the cooldown is ready again.
func (c *Cooldown) Remaining(now time.Duration) time.Duration {
	if c == nil || now >= c.ReadyAt {
		return 0
	}
	return c.ReadyAt - now
}

// Reset makes the cooldown ready immediately.
func (c *Cooldown) Reset() {
	if c != nil {
		c.ReadyAt = 0
	}
}
