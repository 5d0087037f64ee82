package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// DeathSystem runs the one-shot death transition for entities whose health
// reached zero: deactivate, drop collision, cancel pending continuations and
// schedule destruction after the health's DestroyDelay. A zero delay leaves
// the entity in place, deactivated.
type DeathSystem struct {
	Logger *log.Logger
}

func NewDeathSystem() *DeathSystem {
	return &DeathSystem{Logger: log.Default()}
}

func (s *DeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.HealthComponent.Kind()) {
		health, _ := ecs.Get(w, e, component.HealthComponent)
		if !health.IsDead() {
			continue
		}
		lc, ok := ecs.Get(w, e, component.LifecycleComponent)
		if !ok {
			lc = &component.Lifecycle{}
			_ = ecs.Add(w, e, component.LifecycleComponent, lc)
		}
		if lc.DeathHandled {
			continue
		}
		lc.DeathHandled = true
		lc.Active = false

		w.Timers().CancelAll(e)
		if pw := w.PhysicsWorld(); pw != nil {
			pw.DisableCollision(e)
		}
		if body, ok := ecs.Get(w, e, component.BodyComponent); ok {
			body.Velocity = cp.Vector{}
		}
		if ai, ok := ecs.Get(w, e, component.EnemyAIComponent); ok {
			ai.State = component.AIStateDead
		}
		if st, ok := ecs.Get(w, e, component.LocomotionStateComponent); ok {
			st.AttackLocked = false
			st.JumpRequested = false
		}
		w.Events().Push(ecs.Event{Type: ecs.EventDeath, Data: ecs.DeathEvent{Entity: e}})

		if health.DestroyDelay > 0 {
			w.Timers().Schedule(e, ecs.SlotDestroy, w.Now()+health.DestroyDelay, destroyEntity)
		}
		if s.Logger != nil {
			s.Logger.Printf("death: %v died", e)
		}
	}
}

func destroyEntity(w *ecs.World, e ecs.Entity) {
	w.Events().Push(ecs.Event{Type: ecs.EventDestroyed, Data: ecs.DestroyedEvent{Entity: e}})
	w.DestroyEntity(e)
}
