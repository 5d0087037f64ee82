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

func NewGround(w *ecs.World, spec prefabs.SegmentSpec, tint color.Color) (ecs.Entity, error) {
	a := cp.Vector{X: spec.From.X, Y: spec.From.Y}
	b := cp.Vector{X: spec.To.X, Y: spec.To.Y}
	if a == b {
		return 0, fmt.Errorf("ground: degenerate segment at %v", a)
	}

	entity := w.CreateEntity()

	if err := ecs.Add(w, entity, component.GroundSegmentComponent, &component.GroundSegment{A: a, B: b, Radius: spec.Radius}); err != nil {
		return 0, fmt.Errorf("ground: add segment: %w", err)
	}

	if err := ecs.Add(w, entity, component.TintComponent, &component.Tint{Color: tint}); err != nil {
		return 0, fmt.Errorf("ground: add tint: %w", err)
	}

	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddStaticSegment(entity, a, b, spec.Radius, common.CategoryGround)
	}

	return entity, nil
}
