package ecs

import (
	"time"

	"github.com/milk9111/skybrawl/clock"
	"github.com/milk9111/skybrawl/ecs/component"
)

// World owns entities, components, the system order and the per-world
// services every system shares: event queue, timer table, clock and physics.
type World struct {
	entities   entityStore
	components map[component.ComponentID]*SparseSet
	scheduler  *Scheduler
	events     EventQueue
	timers     Timers

	clock        clock.Clock
	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		components: make(map[component.ComponentID]*SparseSet),
		scheduler:  NewScheduler(),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e, cancels its pending timers and
// releases its physics shapes. Children registered with the physics world are
// destroyed with it. It returns false if e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	if w.physicsWorld != nil {
		for _, child := range w.physicsWorld.Children(e) {
			w.DestroyEntity(child)
		}
		w.physicsWorld.RemoveEntity(e)
	}
	w.timers.CancelAll(e)
	for _, set := range w.components {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.alive
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once. Events from the previous tick are dropped
// first, so after Update returns the queue holds exactly this tick's events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.events.flush()
	w.scheduler.Update(w)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Timers returns the world's cancellable continuation table.
func (w *World) Timers() *Timers {
	if w == nil {
		return nil
	}
	return &w.timers
}

// SetClock attaches the clock all timers compare against.
func (w *World) SetClock(c clock.Clock) {
	if w != nil {
		w.clock = c
	}
}

// Clock returns the attached clock, if any.
func (w *World) Clock() clock.Clock {
	if w == nil {
		return nil
	}
	return w.clock
}

// Now returns current game time, or zero without a clock.
func (w *World) Now() time.Duration {
	if w == nil || w.clock == nil {
		return 0
	}
	return w.clock.Now()
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w != nil {
		w.physicsWorld = pw
	}
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

// AddComponent stores value for e under kind.
func (w *World) AddComponent(e Entity, kind component.AnyKind, value any) error {
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.set(kind.ID(), true).Set(e, value)
	return nil
}

// RemoveComponent deletes the component of kind from e.
func (w *World) RemoveComponent(e Entity, kind component.AnyKind) bool {
	if w == nil || kind == nil {
		return false
	}
	return w.set(kind.ID(), false).Remove(e)
}

// HasComponent reports whether e has a component of kind.
func (w *World) HasComponent(e Entity, kind component.AnyKind) bool {
	if w == nil || kind == nil {
		return false
	}
	return w.set(kind.ID(), false).Has(e)
}

// GetComponent returns the raw component value of kind for e.
func (w *World) GetComponent(e Entity, kind component.AnyKind) (any, bool) {
	if w == nil || kind == nil {
		return nil, false
	}
	set := w.set(kind.ID(), false)
	if !set.Has(e) {
		return nil, false
	}
	return set.Get(e), true
}

// Query returns the entities that have every listed kind, in the storage
// order of the smallest set.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		set := w.set(k.ID(), false)
		if set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		if hasAll(sets, e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity that has kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	ents := w.set(kind.ID(), false).Entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func (w *World) set(id component.ComponentID, create bool) *SparseSet {
	if w.components == nil {
		w.components = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.components[id]
	if !ok && create {
		s = &SparseSet{}
		w.components[id] = s
	}
	return s
}

func hasAll(sets []*SparseSet, e Entity) bool {
	for _, s := range sets {
		if !s.Has(e) {
			return false
		}
	}
	return true
}
