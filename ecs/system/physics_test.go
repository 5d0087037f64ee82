package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyFallsOntoGroundAndIsSensed(t *testing.T) {
	w, clk := newTestWorld()
	pw := ecs.NewPhysicsWorld(cp.Vector{Y: common.Gravity})
	w.SetPhysicsWorld(pw)

	ground := w.CreateEntity()
	pw.AddStaticSegment(ground, cp.Vector{X: -10}, cp.Vector{X: 10}, 0.1, common.CategoryGround)

	e := w.CreateEntity()
	body := &component.Body{Position: cp.Vector{Y: 2}, Width: 1, Height: 1, Mass: 1}
	_ = ecs.Add(w, e, component.BodyComponent, body)
	_ = ecs.Add(w, e, component.GroundSensorComponent, &component.GroundSensor{
		FootOffset: cp.Vector{Y: -0.5},
		Radius:     0.2,
		RayLength:  0.3,
		Mask:       common.CategoryGround,
	})
	pw.AddDynamicBody(e, body.Position, body.Mass)
	pw.AddBox(e, body.Width, body.Height, common.CategoryPlayer, common.AllCategories)

	w.AddSystem(NewGroundSensorSystem())
	w.AddSystem(NewPhysicsSystem())

	gs := func() *component.GroundState {
		s, ok := ecs.Get(w, e, component.GroundStateComponent)
		require.True(t, ok)
		return s
	}

	w.Update()
	assert.False(t, gs().Grounded)

	for i := 0; i < 2*common.TPS; i++ {
		clk.Tick()
		w.Update()
	}
	assert.True(t, gs().Grounded)
	assert.True(t, gs().HasHit)
	assert.InDelta(t, 1, gs().Normal.Y, 1e-6)
	assert.InDelta(t, 0.6, body.Position.Y, 0.2)
}
