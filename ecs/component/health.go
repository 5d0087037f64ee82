package component

import (
	"time"

	"github.com/milk9111/skybrawl/observer"
)

// Health models both hit points and lives. With HitCost > 0 every accepted
// damage or heal moves Current by exactly HitCost, otherwise by the amount.
type Health struct {
	Max     int
	Current int
	Dead    bool
	HitCost int

	// Invincibility is the window after an accepted hit during which further
	// damage is rejected. Zero disables it.
	Invincibility   time.Duration
	InvincibleUntil time.Duration

	DestroyDelay time.Duration

	changed *observer.Subject[int]
}

var HealthComponent = NewComponent[Health]()

// NewHealth creates a Health at full value.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsDead reports whether the terminal death state was reached.
func (h *Health) IsDead() bool {
	return h != nil && h.Dead
}

// Invincible reports whether damage at now would be rejected by the window.
func (h *Health) Invincible(now time.Duration) bool {
	return h != nil && h.Invincibility > 0 && now < h.InvincibleUntil
}

// Damage applies amount at game time now and returns how much Current
// dropped. It is a no-op once dead, for non-positive amounts and inside the
// invincibility window.
func (h *Health) Damage(amount int, now time.Duration) int {
	if h == nil || h.Dead || amount <= 0 || h.Invincible(now) {
		return 0
	}
	cost := amount
	if h.HitCost > 0 {
		cost = h.HitCost
	}
	if cost > h.Current {
		cost = h.Current
	}
	h.Current -= cost
	if h.Invincibility > 0 {
		h.InvincibleUntil = now + h.Invincibility
	}
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
	}
	if cost > 0 {
		h.changed.Publish(h.Current)
	}
	return cost
}

// Heal restores amount, clamped at Max, and returns how much Current rose.
func (h *Health) Heal(amount int) int {
	if h == nil || h.Dead || amount <= 0 {
		return 0
	}
	gain := amount
	if h.HitCost > 0 {
		gain = h.HitCost
	}
	if room := h.Max - h.Current; gain > room {
		gain = room
	}
	if gain <= 0 {
		return 0
	}
	h.Current += gain
	h.changed.Publish(h.Current)
	return gain
}

// OnChanged subscribes fn to every change of Current. fn is called at once
// with the current value.
func (h *Health) OnChanged(fn func(current int)) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	if h.changed == nil {
		h.changed = observer.NewSubject(h.Current)
	}
	return h.changed.Subscribe(fn)
}
