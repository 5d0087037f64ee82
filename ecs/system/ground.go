package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

var down = cp.Vector{X: 0, Y: -1}

// GroundSensorSystem probes below every sensing entity: an overlap circle at
// the foot decides grounded, a downward ray supplies the surface normal.
type GroundSensorSystem struct {
	Spatial SpatialQuery
}

func NewGroundSensorSystem() *GroundSensorSystem {
	return &GroundSensorSystem{}
}

func (s *GroundSensorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	q := spatialFor(w, s.Spatial)

	for _, e := range w.Query(component.GroundSensorComponent.Kind(), component.BodyComponent.Kind()) {
		sensor, _ := ecs.Get(w, e, component.GroundSensorComponent)
		body, _ := ecs.Get(w, e, component.BodyComponent)

		state, ok := ecs.Get(w, e, component.GroundStateComponent)
		if !ok {
			state = &component.GroundState{}
			_ = ecs.Add(w, e, component.GroundStateComponent, state)
		}
		*state = SenseGround(q, body.Position, sensor)
	}
}

// SenseGround runs the foot probe for an entity at pos.
func SenseGround(q SpatialQuery, pos cp.Vector, sensor *component.GroundSensor) component.GroundState {
	out := component.GroundState{Normal: cp.Vector{Y: 1}}
	if q == nil || sensor == nil {
		return out
	}
	foot := pos.Add(sensor.FootOffset)
	out.Grounded = len(q.QueryCircle(foot, sensor.Radius, sensor.Mask)) > 0

	if sensor.RayLength > 0 {
		// start the ray a radius above the foot so a slightly sunk foot still hits
		origin := foot.Add(cp.Vector{Y: sensor.Radius})
		if hit, ok := q.CastRay(origin, down, sensor.RayLength+sensor.Radius, sensor.Mask); ok {
			out.HasHit = true
			out.Normal = hit.Normal
		}
	}
	return out
}
