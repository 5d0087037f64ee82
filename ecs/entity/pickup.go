package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/milk9111/skybrawl/prefabs"
)

// NewPickup places a coin or heart. Its collider is only visible to queries,
// so bodies pass through it.
func NewPickup(w *ecs.World, spec *prefabs.PickupSpec, pos cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("pickup: nil spec")
	}
	kind := component.PickupKind(spec.Kind)
	var fallback color.Color
	switch kind {
	case component.PickupCoin:
		fallback = defaultCoinColor
	case component.PickupHeart:
		fallback = defaultHeartColor
	default:
		return 0, fmt.Errorf("pickup: unknown kind %q", spec.Kind)
	}

	entity := w.CreateEntity()

	if err := ecs.Add(w, entity, component.PickupComponent, &component.Pickup{
		Kind:   kind,
		Value:  spec.Value,
		Radius: spec.Radius,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}

	if err := ecs.Add(w, entity, component.BodyComponent, &component.Body{
		Position: pos,
		Width:    spec.Radius * 2,
		Height:   spec.Radius * 2,
		Category: common.CategoryPickup,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.TintComponent, &component.Tint{Color: spec.Color.Or(fallback)}); err != nil {
		return 0, fmt.Errorf("pickup: add tint: %w", err)
	}

	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddStaticCircle(entity, pos, spec.Radius, common.CategoryPickup, common.CategoryQuery)
	}

	return entity, nil
}
