package component

import (
	"time"

	"github.com/jakecoffman/cp"
)

type Locomotion struct {
	MaxSpeed  float64
	JumpSpeed float64
	// AttackMoveMultiplier scales horizontal speed while attack-locked; 0
	// stops the entity dead.
	AttackMoveMultiplier float64
	// MaxSlopeAngle is in radians from vertical.
	MaxSlopeAngle float64
	JumpCutFactor float64
	AttackLock    time.Duration
}

var LocomotionComponent = NewComponent[Locomotion]()

type LocomotionState struct {
	MoveX         float64
	Grounded      bool
	GroundNormal  cp.Vector
	HasGroundHit  bool
	JumpRequested bool
	JumpReleased  bool
	AttackLocked  bool
	Facing        float64
}

var LocomotionStateComponent = NewComponent[LocomotionState]()

// NewLocomotionState returns a state facing right.
func NewLocomotionState() *LocomotionState {
	return &LocomotionState{Facing: 1, GroundNormal: cp.Vector{Y: 1}}
}
