package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playerFixture struct {
	e     ecs.Entity
	in    *component.Input
	st    *component.LocomotionState
	body  *component.Body
	lives *component.Health
}

func newPlayer(w *ecs.World) playerFixture {
	cfg := playerLocomotion()
	cfg.AttackLock = 350 * time.Millisecond

	p, lives := newLivesTarget(w, nil, cp.Vector{})
	in := &component.Input{}
	st := component.NewLocomotionState()
	body, _ := ecs.Get(w, p, component.BodyComponent)
	_ = ecs.Add(w, p, component.PlayerTagComponent, &component.PlayerTag{})
	_ = ecs.Add(w, p, component.InputComponent, in)
	_ = ecs.Add(w, p, component.LocomotionStateComponent, st)
	_ = ecs.Add(w, p, component.LocomotionComponent, cfg)
	addGrounded(w, p, true)
	return playerFixture{e: p, in: in, st: st, body: body, lives: lives}
}

func playerTick(w *ecs.World) {
	NewTimerSystem().Update(w)
	NewPlayerControlSystem(nil).Update(w)
	NewLocomotionSystem().Update(w)
}

func TestPlayerAttackLockRestartsOnEveryPress(t *testing.T) {
	w, clk := newTestWorld()
	p := newPlayer(w)

	p.in.AttackPressed = true
	p.in.MoveX = 1
	playerTick(w)
	require.True(t, p.st.AttackLocked)
	assert.Zero(t, p.body.Velocity.X)

	clk.Advance(300 * time.Millisecond)
	p.in.AttackPressed = true
	playerTick(w)

	clk.Advance(100 * time.Millisecond)
	playerTick(w)
	assert.True(t, p.st.AttackLocked, "second press must restart the lock")
	assert.Zero(t, p.body.Velocity.X, "input is ignored while locked")

	clk.Advance(250 * time.Millisecond)
	playerTick(w)
	assert.False(t, p.st.AttackLocked)
	assert.Equal(t, 8.0, p.body.Velocity.X)
	assert.Len(t, events(w, ecs.EventAttack), 2)
}

func TestPlayerJumpDroppedWhileLocked(t *testing.T) {
	w, clk := newTestWorld()
	p := newPlayer(w)

	p.in.AttackPressed = true
	p.in.JumpPressed = true
	playerTick(w)
	assert.Zero(t, p.body.Velocity.Y)

	clk.Advance(400 * time.Millisecond)
	playerTick(w)
	assert.Zero(t, p.body.Velocity.Y, "a dropped jump request is not queued")

	p.in.JumpPressed = true
	playerTick(w)
	assert.Equal(t, 16.0, p.body.Velocity.Y)
	assert.False(t, p.in.JumpPressed, "edge input is consumed")
}

func TestDeadPlayerIgnoresInput(t *testing.T) {
	w, clk := newTestWorld()
	p := newPlayer(w)
	for i := 0; i < 3; i++ {
		p.lives.Damage(1, clk.Now())
		clk.Advance(time.Second)
	}

	p.in.MoveX = 1
	p.in.JumpPressed = true
	playerTick(w)
	assert.Zero(t, p.body.Velocity.X)
	assert.Zero(t, p.body.Velocity.Y)
	assert.Zero(t, p.st.MoveX)
}
