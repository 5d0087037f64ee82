package system

import (
	"io"
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/clock"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// fakeShape is a circle collider. When body is set the circle follows it.
type fakeShape struct {
	owner    ecs.Entity
	body     *component.Body
	center   cp.Vector
	radius   float64
	category uint
}

// fakeSpatial is an in-memory SpatialQuery. Colliders are 1-based indexes
// into shapes.
type fakeSpatial struct {
	shapes  []fakeShape
	parents map[ecs.Entity]ecs.Entity

	ray       bool
	rayNormal cp.Vector
}

func newFakeSpatial() *fakeSpatial {
	return &fakeSpatial{parents: make(map[ecs.Entity]ecs.Entity)}
}

func (f *fakeSpatial) add(owner ecs.Entity, center cp.Vector, radius float64, category uint) ecs.Collider {
	f.shapes = append(f.shapes, fakeShape{owner: owner, center: center, radius: radius, category: category})
	return ecs.Collider(len(f.shapes))
}

func (f *fakeSpatial) attach(owner ecs.Entity, body *component.Body, offset cp.Vector, radius float64, category uint) ecs.Collider {
	f.shapes = append(f.shapes, fakeShape{owner: owner, body: body, center: offset, radius: radius, category: category})
	return ecs.Collider(len(f.shapes))
}

func (f *fakeSpatial) QueryCircle(center cp.Vector, radius float64, mask uint) []ecs.Collider {
	var out []ecs.Collider
	for i, s := range f.shapes {
		if s.category&mask == 0 {
			continue
		}
		c := s.center
		if s.body != nil {
			c = s.body.Position.Add(s.center)
		}
		r := radius + s.radius
		if distanceSq(center, c) <= r*r {
			out = append(out, ecs.Collider(i+1))
		}
	}
	return out
}

func (f *fakeSpatial) CastRay(origin, dir cp.Vector, maxDistance float64, mask uint) (ecs.RayHit, bool) {
	if !f.ray || mask&common.CategoryGround == 0 {
		return ecs.RayHit{}, false
	}
	return ecs.RayHit{Point: origin, Normal: f.rayNormal}, true
}

func (f *fakeSpatial) ResolveOwningEntity(c ecs.Collider) (ecs.Entity, bool) {
	i := int(c) - 1
	if i < 0 || i >= len(f.shapes) {
		return 0, false
	}
	e := f.shapes[i].owner
	for {
		p, ok := f.parents[e]
		if !ok {
			return e, true
		}
		e = p
	}
}

var quietLogger = log.New(io.Discard, "", 0)

func newTestWorld() (*ecs.World, *clock.SimClock) {
	w := ecs.NewWorld()
	clk := clock.NewSimClock(common.FixedDelta)
	w.SetClock(clk)
	return w, clk
}

// addTarget creates a live entity with health and a body at pos.
func addTarget(w *ecs.World, f *fakeSpatial, pos cp.Vector, hp int, category uint) (ecs.Entity, *component.Health, *component.Body) {
	e := w.CreateEntity()
	h := component.NewHealth(hp)
	body := &component.Body{Position: pos}
	_ = ecs.Add(w, e, component.HealthComponent, h)
	_ = ecs.Add(w, e, component.BodyComponent, body)
	_ = ecs.Add(w, e, component.LifecycleComponent, &component.Lifecycle{Active: true})
	if f != nil {
		f.attach(e, body, cp.Vector{}, 0.4, category)
	}
	return e, h, body
}

func addGrounded(w *ecs.World, e ecs.Entity, grounded bool) *component.GroundState {
	gs := &component.GroundState{Grounded: grounded, Normal: cp.Vector{Y: 1}}
	_ = ecs.Add(w, e, component.GroundStateComponent, gs)
	return gs
}

func enemyProfile(cooldown time.Duration) *component.CombatProfile {
	return &component.CombatProfile{
		Radius:     0.9,
		Damage:     10,
		Cooldown:   clock.NewCooldown(cooldown),
		TargetMask: common.CategoryPlayer,
	}
}

func events(w *ecs.World, typ string) []ecs.Event {
	return w.Events().OfType(typ)
}
