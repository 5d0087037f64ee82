package system

import (
	"time"

	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// PhysicsSystem pushes body velocities into Chipmunk, steps the space by one
// fixed delta and reads the simulated positions back.
type PhysicsSystem struct {
	Step time.Duration
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{Step: common.FixedDelta}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ents := w.Query(component.BodyComponent.Kind())
	for _, e := range ents {
		body, _ := ecs.Get(w, e, component.BodyComponent)
		if pb, ok := pw.Body(e); ok {
			pb.SetVelocityVector(body.Velocity)
		}
	}

	pw.Step(s.Step.Seconds())

	for _, e := range ents {
		body, ok := ecs.Get(w, e, component.BodyComponent)
		if !ok {
			continue
		}
		if pb, ok := pw.Body(e); ok {
			body.Position = pb.Position()
			body.Velocity = pb.Velocity()
		}
	}
}
