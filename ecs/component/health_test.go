package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthDamageIsMonotonicAndTerminal(t *testing.T) {
	h := NewHealth(30)

	prev := h.Current
	for i := 0; i < 5; i++ {
		h.Damage(10, 0)
		require.LessOrEqual(t, h.Current, prev)
		require.GreaterOrEqual(t, h.Current, 0)
		prev = h.Current
	}
	require.True(t, h.IsDead())
	assert.Equal(t, 0, h.Current)

	assert.Equal(t, 0, h.Damage(10, 0))
	assert.Equal(t, 0, h.Heal(10))
	assert.True(t, h.IsDead())
	assert.Equal(t, 0, h.Current)
}

func TestHealthRejectsNonPositiveAmounts(t *testing.T) {
	h := NewHealth(10)
	assert.Equal(t, 0, h.Damage(0, 0))
	assert.Equal(t, 0, h.Damage(-5, 0))
	h.Damage(4, 0)
	assert.Equal(t, 0, h.Heal(-1))
	assert.Equal(t, 6, h.Current)
}

func TestHealthHealClampsAtMax(t *testing.T) {
	h := NewHealth(10)
	h.Damage(3, 0)
	assert.Equal(t, 3, h.Heal(50))
	assert.Equal(t, 10, h.Current)
	assert.Equal(t, 0, h.Heal(1))
}

func TestHealthInvincibilityWindow(t *testing.T) {
	const window = 750 * time.Millisecond
	const eps = time.Millisecond

	cases := []struct {
		name     string
		second   time.Duration
		accepted bool
	}{
		{"just_before_expiry", time.Second + window - eps, false},
		{"at_expiry", time.Second + window, true},
		{"just_after_expiry", time.Second + window + eps, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(3)
			h.HitCost = 1
			h.Invincibility = window

			require.Equal(t, 1, h.Damage(10, time.Second))
			got := h.Damage(10, c.second) > 0
			assert.Equal(t, c.accepted, got)
		})
	}
}

func TestLivesEndToEnd(t *testing.T) {
	h := NewHealth(3)
	h.HitCost = 1
	h.Invincibility = 750 * time.Millisecond

	var seen []int
	h.OnChanged(func(v int) { seen = append(seen, v) })

	now := time.Duration(0)
	for i := 0; i < 3; i++ {
		require.False(t, h.IsDead(), "dead before hit %d", i+1)
		require.Equal(t, 1, h.Damage(10, now))
		now += time.Second
	}
	assert.True(t, h.IsDead())
	assert.Equal(t, []int{3, 2, 1, 0}, seen)
}

func TestHealthInvincibilityStartsOnLethalHit(t *testing.T) {
	h := NewHealth(1)
	h.HitCost = 1
	h.Invincibility = time.Second
	h.Damage(1, 2*time.Second)
	assert.Equal(t, 3*time.Second, h.InvincibleUntil)
}

func TestHealthLateSubscriberGetsCurrentValue(t *testing.T) {
	h := NewHealth(3)
	h.HitCost = 1
	h.Damage(1, 0)

	var got []int
	unsubscribe := h.OnChanged(func(v int) { got = append(got, v) })
	require.Equal(t, []int{2}, got)

	unsubscribe()
	h.Heal(1)
	assert.Equal(t, []int{2}, got)
}
