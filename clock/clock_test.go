package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimClockAdvanceAndPause(t *testing.T) {
	c := NewSimClock(10 * time.Millisecond)

	require.True(t, c.Tick())
	require.True(t, c.Tick())
	assert.Equal(t, 20*time.Millisecond, c.Now())
	assert.Equal(t, uint64(2), c.Ticks())

	c.Pause()
	assert.True(t, c.IsPaused())
	assert.False(t, c.Tick())
	assert.False(t, c.Advance(time.Second))
	assert.Equal(t, 20*time.Millisecond, c.Now(), "paused clock must not move")

	assert.False(t, c.Toggle())
	require.True(t, c.Tick())
	assert.Equal(t, 30*time.Millisecond, c.Now())
}

func TestSimClockRejectsNegativeAdvance(t *testing.T) {
	c := NewSimClock(time.Millisecond)
	assert.False(t, c.Advance(-time.Second))
	assert.Equal(t, time.Duration(0), c.Now())
}

func TestCooldownGate(t *testing.T) {
	cases := []struct {
		name     string
		first    time.Duration
		second   time.Duration
		accepted bool
	}{
		{"within_cooldown", 0, 299 * time.Millisecond, false},
		{"exactly_at_ready", 0, 300 * time.Millisecond, true},
		{"after_cooldown", 100 * time.Millisecond, time.Second, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cd := NewCooldown(300 * time.Millisecond)
			require.True(t, cd.TryTrigger(tc.first))
			readyAt := cd.ReadyAt
			assert.Equal(t, tc.accepted, cd.TryTrigger(tc.second))
			if !tc.accepted {
				assert.Equal(t, readyAt, cd.ReadyAt, "rejected attempt must not move ReadyAt")
				assert.Equal(t, readyAt-tc.second, cd.Remaining(tc.second))
			} else {
				assert.Equal(t, tc.second+300*time.Millisecond, cd.ReadyAt)
			}
		})
	}
}

func TestCooldownReset(t *testing.T) {
	cd := NewCooldown(time.Second)
	require.True(t, cd.TryTrigger(0))
	assert.False(t, cd.Ready(500*time.Millisecond))
	cd.Reset()
	assert.True(t, cd.Ready(500*time.Millisecond))
	assert.Equal(t, time.Duration(0), cd.Remaining(500*time.Millisecond))
}
