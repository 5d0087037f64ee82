package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// SpatialQuery is the read-only view of the physics world that gameplay
// systems consume. *ecs.PhysicsWorld implements it.
type SpatialQuery interface {
	QueryCircle(center cp.Vector, radius float64, mask uint) []ecs.Collider
	CastRay(origin, dir cp.Vector, maxDistance float64, mask uint) (ecs.RayHit, bool)
	ResolveOwningEntity(c ecs.Collider) (ecs.Entity, bool)
}

func spatialFor(w *ecs.World, override SpatialQuery) SpatialQuery {
	if override != nil {
		return override
	}
	if pw := w.PhysicsWorld(); pw != nil {
		return pw
	}
	return nil
}

// isActive reports whether e still takes part in decision-making. Entities
// without a Lifecycle are always active.
func isActive(w *ecs.World, e ecs.Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	if lc, ok := ecs.Get(w, e, component.LifecycleComponent); ok && !lc.Active {
		return false
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent); ok && h.IsDead() {
		return false
	}
	return true
}

func facingOf(w *ecs.World, e ecs.Entity) float64 {
	if ai, ok := ecs.Get(w, e, component.EnemyAIComponent); ok && ai.Facing != 0 {
		return ai.Facing
	}
	if st, ok := ecs.Get(w, e, component.LocomotionStateComponent); ok && st.Facing != 0 {
		return st.Facing
	}
	return 1
}

func distanceSq(a, b cp.Vector) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}
