package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/clock"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttacker(w *ecs.World, pos cp.Vector, cooldown time.Duration) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.BodyComponent, &component.Body{Position: pos})
	_ = ecs.Add(w, e, component.LocomotionStateComponent, component.NewLocomotionState())
	_ = ecs.Add(w, e, component.CombatProfileComponent, &component.CombatProfile{
		OriginOffset: cp.Vector{X: 0.5},
		Radius:       0.6,
		Damage:       10,
		Cooldown:     clock.NewCooldown(cooldown),
		TargetMask:   common.CategoryEnemy,
	})
	return e
}

func TestCombatCooldownGate(t *testing.T) {
	w, clk := newTestWorld()
	f := newFakeSpatial()
	r := &CombatResolver{Spatial: f}
	attacker := newAttacker(w, cp.Vector{}, 300*time.Millisecond)

	ok, _ := r.Attempt(w, attacker)
	require.True(t, ok)

	clk.Advance(200 * time.Millisecond)
	ok, _ = r.Attempt(w, attacker)
	assert.False(t, ok, "second swing within cooldown must be rejected")

	clk.Advance(100 * time.Millisecond)
	ok, _ = r.Attempt(w, attacker)
	assert.True(t, ok, "swing after cooldown must be accepted")
}

func TestCombatDamagesEachTargetOnce(t *testing.T) {
	w, _ := newTestWorld()
	f := newFakeSpatial()
	r := &CombatResolver{Spatial: f}
	attacker := newAttacker(w, cp.Vector{}, 300*time.Millisecond)

	enemy, health, body := addTarget(w, f, cp.Vector{X: 0.8}, 30, common.CategoryEnemy)
	head := w.CreateEntity()
	f.parents[head] = enemy
	f.attach(head, body, cp.Vector{Y: 0.3}, 0.2, common.CategoryEnemy)
	f.attach(enemy, body, cp.Vector{Y: -0.3}, 0.2, common.CategoryEnemy)

	ok, hits := r.Attempt(w, attacker)
	require.True(t, ok)
	require.Len(t, hits, 1)
	assert.Equal(t, enemy, hits[0].Target)
	assert.Equal(t, 20, health.Current)

	hitEvents := events(w, ecs.EventHit)
	require.Len(t, hitEvents, 1)
	assert.Equal(t, []ecs.Entity{enemy}, hitEvents[0].Data.(ecs.HitEvent).Targets)
	assert.Len(t, events(w, ecs.EventHurt), 1)
}

func TestCombatMissIsAcceptedWithoutHitEvent(t *testing.T) {
	w, _ := newTestWorld()
	f := newFakeSpatial()
	r := &CombatResolver{Spatial: f}
	attacker := newAttacker(w, cp.Vector{}, 300*time.Millisecond)
	_, health, _ := addTarget(w, f, cp.Vector{X: 5}, 30, common.CategoryEnemy)

	ok, hits := r.Attempt(w, attacker)
	assert.True(t, ok)
	assert.Empty(t, hits)
	assert.Empty(t, events(w, ecs.EventHit))
	assert.Equal(t, 30, health.Current)
}

func TestCombatOriginMirrorsWithFacing(t *testing.T) {
	w, _ := newTestWorld()
	f := newFakeSpatial()
	r := &CombatResolver{Spatial: f}
	attacker := newAttacker(w, cp.Vector{}, 0)
	_, behind, _ := addTarget(w, f, cp.Vector{X: -1.2}, 30, common.CategoryEnemy)

	r.Attempt(w, attacker)
	assert.Equal(t, 30, behind.Current, "target behind a right-facing attacker is out of reach")

	st, _ := ecs.Get(w, attacker, component.LocomotionStateComponent)
	st.Facing = -1
	r.Attempt(w, attacker)
	assert.Equal(t, 20, behind.Current)
}

func TestCombatInvincibleTargetIsNotAHit(t *testing.T) {
	w, _ := newTestWorld()
	f := newFakeSpatial()
	r := &CombatResolver{Spatial: f}
	attacker := newAttacker(w, cp.Vector{}, 0)
	_, lives, _ := addTarget(w, f, cp.Vector{X: 0.5}, 3, common.CategoryEnemy)
	lives.HitCost = 1
	lives.Invincibility = 750 * time.Millisecond

	_, hits := r.Attempt(w, attacker)
	require.Len(t, hits, 1)
	_, hits = r.Attempt(w, attacker)
	assert.Empty(t, hits)
	assert.Equal(t, 2, lives.Current)
	assert.Len(t, events(w, ecs.EventHit), 1)
}

func TestCombatIgnoresTargetsOutsideMask(t *testing.T) {
	w, _ := newTestWorld()
	f := newFakeSpatial()
	r := &CombatResolver{Spatial: f}
	attacker := newAttacker(w, cp.Vector{}, 0)
	_, friend, _ := addTarget(w, f, cp.Vector{X: 0.5}, 3, common.CategoryPlayer)

	r.Attempt(w, attacker)
	assert.Equal(t, 3, friend.Current)
}
