package component

import "github.com/jakecoffman/cp"

// GroundSensor describes the foot probe: an overlap circle at FootOffset from
// the body centre plus a downward ray for the surface normal.
type GroundSensor struct {
	FootOffset cp.Vector
	Radius     float64
	RayLength  float64
	Mask       uint
}

var GroundSensorComponent = NewComponent[GroundSensor]()

// GroundState is the sensor result for the current tick.
type GroundState struct {
	Grounded bool
	HasHit   bool
	Normal   cp.Vector
}

var GroundStateComponent = NewComponent[GroundState]()

// GroundSegment is one static piece of level geometry.
type GroundSegment struct {
	A, B   cp.Vector
	Radius float64
}

var GroundSegmentComponent = NewComponent[GroundSegment]()
