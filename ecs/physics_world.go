package ecs

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/common"
)

// Collider is an opaque handle to one physics shape.
type Collider uint64

// RayHit describes the first shape hit by a ray cast.
type RayHit struct {
	Point    cp.Vector
	Normal   cp.Vector
	Distance float64
	Collider Collider
}

// PhysicsWorld owns the Chipmunk space and maps shapes back to entities. It
// is the spatial query provider for every gameplay system.
type PhysicsWorld struct {
	space *cp.Space

	next      Collider
	shapes    map[Collider]*cp.Shape
	colliders map[*cp.Shape]Collider
	owners    map[Collider]Entity
	inSpace   map[Collider]bool

	entityShapes map[Entity][]Collider
	bodies       map[Entity]*cp.Body
	bodyInSpace  map[Entity]bool
	parents      map[Entity]Entity
	children     map[Entity][]Entity
}

// NewPhysicsWorld creates an empty space with the given gravity.
func NewPhysicsWorld(gravity cp.Vector) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(gravity)

	return &PhysicsWorld{
		space:        space,
		shapes:       make(map[Collider]*cp.Shape),
		colliders:    make(map[*cp.Shape]Collider),
		owners:       make(map[Collider]Entity),
		inSpace:      make(map[Collider]bool),
		entityShapes: make(map[Entity][]Collider),
		bodies:       make(map[Entity]*cp.Body),
		bodyInSpace:  make(map[Entity]bool),
		parents:      make(map[Entity]Entity),
		children:     make(map[Entity][]Entity),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Step advances the physics simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// AddDynamicBody creates a non-rotating dynamic body for e at pos.
func (pw *PhysicsWorld) AddDynamicBody(e Entity, pos cp.Vector, mass float64) *cp.Body {
	if pw == nil {
		return nil
	}
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(pos)
	pw.space.AddBody(body)
	pw.bodies[e] = body
	pw.bodyInSpace[e] = true
	return body
}

// Body returns the body owned by e.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	b, ok := pw.bodies[e]
	return b, ok && pw.bodyInSpace[e]
}

// AddBox attaches a box shape centred on e's body.
func (pw *PhysicsWorld) AddBox(e Entity, width, height float64, category, mask uint) Collider {
	body, ok := pw.Body(e)
	if !ok {
		return 0
	}
	return pw.register(e, cp.NewBox(body, width, height, 0), category, mask)
}

// AddCircle attaches a circle shape to e's body at offset.
func (pw *PhysicsWorld) AddCircle(e Entity, radius float64, offset cp.Vector, category, mask uint) Collider {
	body, ok := pw.Body(e)
	if !ok {
		return 0
	}
	return pw.register(e, cp.NewCircle(body, radius, offset), category, mask)
}

// AddChildCircle attaches a circle owned by child to parent's body. Queries
// that hit it resolve to parent through ResolveOwningEntity.
func (pw *PhysicsWorld) AddChildCircle(child, parent Entity, radius float64, offset cp.Vector, category, mask uint) Collider {
	body, ok := pw.Body(parent)
	if !ok {
		return 0
	}
	pw.SetParent(child, parent)
	return pw.register(child, cp.NewCircle(body, radius, offset), category, mask)
}

// AddStaticSegment adds a static ground segment owned by e.
func (pw *PhysicsWorld) AddStaticSegment(e Entity, a, b cp.Vector, radius float64, category uint) Collider {
	if pw == nil {
		return 0
	}
	return pw.register(e, cp.NewSegment(pw.space.StaticBody, a, b, radius), category, common.AllCategories)
}

// AddStaticCircle adds a static circle owned by e, used for pickups.
func (pw *PhysicsWorld) AddStaticCircle(e Entity, pos cp.Vector, radius float64, category, mask uint) Collider {
	if pw == nil {
		return 0
	}
	return pw.register(e, cp.NewCircle(pw.space.StaticBody, radius, pos), category, mask)
}

func (pw *PhysicsWorld) register(e Entity, shape *cp.Shape, category, mask uint) Collider {
	shape.SetFriction(0.8)
	shape.SetFilter(cp.ShapeFilter{Group: 0, Categories: category, Mask: mask | common.CategoryQuery})
	pw.space.AddShape(shape)

	pw.next++
	c := pw.next
	pw.shapes[c] = shape
	pw.colliders[shape] = c
	pw.owners[c] = e
	pw.inSpace[c] = true
	pw.entityShapes[e] = append(pw.entityShapes[e], c)
	return c
}

// SetParent records that child is a sub-part of parent.
func (pw *PhysicsWorld) SetParent(child, parent Entity) {
	if pw == nil || child == parent {
		return
	}
	if _, ok := pw.parents[child]; ok {
		return
	}
	pw.parents[child] = parent
	pw.children[parent] = append(pw.children[parent], child)
}

// Children returns the entities registered as sub-parts of e.
func (pw *PhysicsWorld) Children(e Entity) []Entity {
	if pw == nil {
		return nil
	}
	return append([]Entity(nil), pw.children[e]...)
}

// Colliders returns the live colliders owned directly by e.
func (pw *PhysicsWorld) Colliders(e Entity) []Collider {
	if pw == nil {
		return nil
	}
	var out []Collider
	for _, c := range pw.entityShapes[e] {
		if pw.inSpace[c] {
			out = append(out, c)
		}
	}
	return out
}

// DisableCollision pulls e's shapes (and its children's) out of the space and
// removes its body, freezing it in place. Queries stop seeing it.
func (pw *PhysicsWorld) DisableCollision(e Entity) {
	if pw == nil {
		return
	}
	for _, child := range pw.children[e] {
		pw.removeShapes(child)
	}
	pw.removeShapes(e)
	if body, ok := pw.bodies[e]; ok && pw.bodyInSpace[e] {
		body.SetVelocityVector(cp.Vector{})
		pw.space.RemoveBody(body)
		pw.bodyInSpace[e] = false
	}
}

// RemoveEntity forgets everything registered for e.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil {
		return
	}
	pw.DisableCollision(e)
	for _, c := range pw.entityShapes[e] {
		delete(pw.colliders, pw.shapes[c])
		delete(pw.shapes, c)
		delete(pw.owners, c)
		delete(pw.inSpace, c)
	}
	delete(pw.entityShapes, e)
	delete(pw.bodies, e)
	delete(pw.bodyInSpace, e)
	if parent, ok := pw.parents[e]; ok {
		siblings := pw.children[parent]
		for i, c := range siblings {
			if c == e {
				pw.children[parent] = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		delete(pw.parents, e)
	}
	delete(pw.children, e)
}

func (pw *PhysicsWorld) removeShapes(e Entity) {
	for _, c := range pw.entityShapes[e] {
		if !pw.inSpace[c] {
			continue
		}
		pw.space.RemoveShape(pw.shapes[c])
		pw.inSpace[c] = false
	}
}

// QueryCircle returns every collider whose category is in mask and which
// overlaps the circle at center. Results are ordered by collider handle.
func (pw *PhysicsWorld) QueryCircle(center cp.Vector, radius float64, mask uint) []Collider {
	if pw == nil || pw.space == nil {
		return nil
	}
	var out []Collider
	filter := cp.ShapeFilter{Group: 0, Categories: common.CategoryQuery, Mask: mask}
	pw.space.BBQuery(cp.NewBBForCircle(center, radius), filter, func(shape *cp.Shape, data interface{}) {
		// The broadphase only matches bounding boxes.
		if shape.PointQuery(center).Distance > radius {
			return
		}
		if c, ok := pw.colliders[shape]; ok {
			out = append(out, c)
		}
	}, nil)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CastRay returns the first collider in mask hit by a ray from origin along
// dir, up to maxDistance.
func (pw *PhysicsWorld) CastRay(origin, dir cp.Vector, maxDistance float64, mask uint) (RayHit, bool) {
	if pw == nil || pw.space == nil || maxDistance <= 0 {
		return RayHit{}, false
	}
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 {
		return RayHit{}, false
	}
	end := cp.Vector{X: origin.X + dir.X/length*maxDistance, Y: origin.Y + dir.Y/length*maxDistance}
	filter := cp.ShapeFilter{Group: 0, Categories: common.CategoryQuery, Mask: mask}
	info := pw.space.SegmentQueryFirst(origin, end, 0, filter)
	if info.Shape == nil {
		return RayHit{}, false
	}
	c, ok := pw.colliders[info.Shape]
	if !ok {
		return RayHit{}, false
	}
	return RayHit{
		Point:    info.Point,
		Normal:   info.Normal,
		Distance: info.Alpha * maxDistance,
		Collider: c,
	}, true
}

// ResolveOwningEntity maps a collider to the logical entity that owns it,
// walking up from sub-part entities to their root.
func (pw *PhysicsWorld) ResolveOwningEntity(c Collider) (Entity, bool) {
	if pw == nil {
		return 0, false
	}
	e, ok := pw.owners[c]
	if !ok {
		return 0, false
	}
	for i := 0; i < 16; i++ {
		parent, ok := pw.parents[e]
		if !ok {
			break
		}
		e = parent
	}
	return e, true
}
