package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// LocomotionSystem turns each locomotion state into the body velocity for
// the coming physics step.
type LocomotionSystem struct{}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.LocomotionComponent.Kind(), component.LocomotionStateComponent.Kind(), component.BodyComponent.Kind()) {
		if !isActive(w, e) {
			continue
		}
		cfg, _ := ecs.Get(w, e, component.LocomotionComponent)
		st, _ := ecs.Get(w, e, component.LocomotionStateComponent)
		body, _ := ecs.Get(w, e, component.BodyComponent)

		if gs, ok := ecs.Get(w, e, component.GroundStateComponent); ok {
			st.Grounded = gs.Grounded
			st.HasGroundHit = gs.HasHit
			st.GroundNormal = gs.Normal
		} else {
			st.Grounded = false
			st.HasGroundHit = false
		}
		body.Velocity = StepLocomotion(cfg, st, body.Velocity)
	}
}

// StepLocomotion returns the velocity for the next physics step and consumes
// the one-shot jump flags on st.
func StepLocomotion(cfg *component.Locomotion, st *component.LocomotionState, vel cp.Vector) cp.Vector {
	if cfg == nil || st == nil {
		return vel
	}
	v := vel
	move := common.Clamp(st.MoveX, -1, 1)

	speed := cfg.MaxSpeed
	if st.AttackLocked {
		speed *= cfg.AttackMoveMultiplier
	}
	vx := move * speed

	if slope, ok := walkableTangent(cfg, st, move); ok {
		v = slope.Mult(math.Abs(vx))
	} else {
		v.X = vx
	}

	if !st.AttackLocked {
		if st.JumpRequested && st.Grounded {
			v.Y = cfg.JumpSpeed
		}
		if st.JumpReleased && v.Y > 0 {
			v.Y *= cfg.JumpCutFactor
		}
	}
	// Facing follows the direction actually moved, so a full attack lock
	// keeps it while a partial one lets the entity turn.
	if vx > 0 {
		st.Facing = 1
	} else if vx < 0 {
		st.Facing = -1
	}
	st.JumpRequested = false
	st.JumpReleased = false
	return v
}

// walkableTangent returns the unit ground tangent pointing toward the input
// direction when the entity stands on a walkable surface and is moving.
func walkableTangent(cfg *component.Locomotion, st *component.LocomotionState, move float64) (cp.Vector, bool) {
	if !st.Grounded || !st.HasGroundHit || move == 0 {
		return cp.Vector{}, false
	}
	n := st.GroundNormal
	if n.LengthSq() == 0 {
		return cp.Vector{}, false
	}
	n = n.Normalize()
	if SlopeAngle(n) > cfg.MaxSlopeAngle {
		return cp.Vector{}, false
	}
	tangent := cp.Vector{X: n.Y, Y: -n.X}
	if tangent.X*move < 0 {
		tangent = tangent.Mult(-1)
	}
	return tangent, true
}

// SlopeAngle is the angle in radians between a surface normal and straight up.
func SlopeAngle(normal cp.Vector) float64 {
	l := math.Hypot(normal.X, normal.Y)
	if l == 0 {
		return math.Pi
	}
	return math.Acos(common.Clamp(normal.Y/l, -1, 1))
}
