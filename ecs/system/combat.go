package system

import (
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// Hit records damage one swing applied to one target.
type Hit struct {
	Target ecs.Entity
	Damage int
}

// CombatResolver resolves melee swings: cooldown gate, circle query in front
// of the attacker, owner resolution and at most one damage call per target.
type CombatResolver struct {
	Spatial SpatialQuery
}

func NewCombatResolver() *CombatResolver {
	return &CombatResolver{}
}

// Attempt swings attacker's CombatProfile. It reports false when the swing
// was rejected by the cooldown; an accepted swing that hits nothing returns
// true and no hits.
func (r *CombatResolver) Attempt(w *ecs.World, attacker ecs.Entity) (bool, []Hit) {
	if r == nil || w == nil {
		return false, nil
	}
	profile, ok := ecs.Get(w, attacker, component.CombatProfileComponent)
	if !ok {
		return false, nil
	}
	body, ok := ecs.Get(w, attacker, component.BodyComponent)
	if !ok {
		return false, nil
	}

	now := w.Now()
	if !profile.Cooldown.TryTrigger(now) {
		return false, nil
	}

	q := spatialFor(w, r.Spatial)
	if q == nil {
		return true, nil
	}

	origin := profile.Origin(body.Position, facingOf(w, attacker))
	var hits []Hit
	seen := make(map[ecs.Entity]bool)
	for _, c := range q.QueryCircle(origin, profile.Radius, profile.TargetMask) {
		target, ok := q.ResolveOwningEntity(c)
		if !ok || target == attacker || seen[target] {
			continue
		}
		seen[target] = true

		health, ok := ecs.Get(w, target, component.HealthComponent)
		if !ok {
			continue
		}
		applied := health.Damage(profile.Damage, now)
		if applied <= 0 {
			continue
		}
		hits = append(hits, Hit{Target: target, Damage: applied})
		if !health.IsDead() {
			w.Events().Push(ecs.Event{Type: ecs.EventHurt, Data: ecs.HurtEvent{Entity: target, Amount: applied, Current: health.Current}})
		}
	}

	if len(hits) > 0 {
		targets := make([]ecs.Entity, 0, len(hits))
		for _, h := range hits {
			targets = append(targets, h.Target)
		}
		w.Events().Push(ecs.Event{Type: ecs.EventHit, Data: ecs.HitEvent{Attacker: attacker, Targets: targets}})
	}
	return true, hits
}
