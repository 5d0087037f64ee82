package system

import (
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// PickupSystem hands pickups to collectors. Coins are taken on contact;
// hearts are taken on interact, nearest first, and only if they heal.
type PickupSystem struct {
	Spatial SpatialQuery
}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	q := spatialFor(w, s.Spatial)
	if q == nil {
		return
	}

	for _, e := range w.Query(component.CollectorComponent.Kind(), component.BodyComponent.Kind()) {
		collector, _ := ecs.Get(w, e, component.CollectorComponent)
		body, _ := ecs.Get(w, e, component.BodyComponent)

		interact := false
		if in, ok := ecs.Get(w, e, component.InputComponent); ok {
			interact = in.InteractPressed
			in.InteractPressed = false
		}
		if !isActive(w, e) {
			continue
		}

		var heart ecs.Entity
		heartDistSq := 0.0
		seen := make(map[ecs.Entity]bool)
		for _, c := range q.QueryCircle(body.Position, collector.Range, common.CategoryPickup) {
			owner, ok := q.ResolveOwningEntity(c)
			if !ok || seen[owner] || !w.IsAlive(owner) {
				continue
			}
			seen[owner] = true
			pickup, ok := ecs.Get(w, owner, component.PickupComponent)
			if !ok {
				continue
			}

			switch pickup.Kind {
			case component.PickupCoin:
				if wallet, ok := ecs.Get(w, e, component.WalletComponent); ok && wallet.Add(pickup.Value) {
					s.consume(w, e, owner, pickup)
				}
			case component.PickupHeart:
				if !interact {
					continue
				}
				pb, ok := ecs.Get(w, owner, component.BodyComponent)
				if !ok {
					continue
				}
				d := distanceSq(body.Position, pb.Position)
				if heart == 0 || d < heartDistSq {
					heart, heartDistSq = owner, d
				}
			}
		}

		if heart != 0 {
			pickup, _ := ecs.Get(w, heart, component.PickupComponent)
			if health, ok := ecs.Get(w, e, component.HealthComponent); ok && health.Heal(pickup.Value) > 0 {
				s.consume(w, e, heart, pickup)
			}
		}
	}
}

func (s *PickupSystem) consume(w *ecs.World, collector, pickup ecs.Entity, p *component.Pickup) {
	w.Events().Push(ecs.Event{Type: ecs.EventPickup, Data: ecs.PickupEvent{
		Collector: collector,
		Pickup:    pickup,
		Kind:      string(p.Kind),
		Value:     p.Value,
	}})
	w.DestroyEntity(pickup)
}
