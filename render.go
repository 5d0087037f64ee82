package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"golang.org/x/image/colornames"
)

// invincibleBlink is how many ticks each blink phase lasts.
const invincibleBlink = 4

func drawWorld(screen *ebiten.Image, w *ecs.World, cam *camera) {
	ecs.ForEach(w, component.GroundSegmentComponent, func(e ecs.Entity, seg *component.GroundSegment) {
		x1, y1 := cam.toScreen(seg.A)
		x2, y2 := cam.toScreen(seg.B)
		width := cam.scale(seg.Radius * 2)
		if width < 2 {
			width = 2
		}
		vector.StrokeLine(screen, x1, y1, x2, y2, width, tintOf(w, e, colornames.Sienna), true)
	})

	ecs.ForEach(w, component.PickupComponent, func(e ecs.Entity, p *component.Pickup) {
		body, ok := ecs.Get(w, e, component.BodyComponent)
		if !ok {
			return
		}
		x, y := cam.toScreen(body.Position)
		vector.FillCircle(screen, x, y, cam.scale(p.Radius), tintOf(w, e, colornames.Gold), true)
	})

	ticks := int(w.Now() / (common.FixedDelta * invincibleBlink))
	ecs.ForEach(w, component.BodyComponent, func(e ecs.Entity, body *component.Body) {
		if ecs.Has(w, e, component.PickupComponent) {
			return
		}
		clr := tintOf(w, e, colornames.White)
		if h, ok := ecs.Get(w, e, component.HealthComponent); ok {
			switch {
			case h.IsDead():
				clr = fade(clr, 0x60)
			case h.Invincible(w.Now()) && ticks%2 == 0:
				clr = fade(clr, 0x80)
			}
		}
		drawBox(screen, cam, body.Position, body.Width, body.Height, clr)
		if ai, ok := ecs.Get(w, e, component.EnemyAIComponent); ok && ai.State == component.AIStateSpawnDelay {
			drawBox(screen, cam, body.Position, body.Width, body.Height, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50})
		}
	})
}

func drawBox(screen *ebiten.Image, cam *camera, center cp.Vector, width, height float64, clr color.Color) {
	x, y := cam.toScreen(cp.Vector{X: center.X - width/2, Y: center.Y + height/2})
	vector.FillRect(screen, x, y, cam.scale(width), cam.scale(height), clr, false)
}

func tintOf(w *ecs.World, e ecs.Entity, fallback color.Color) color.Color {
	if t, ok := ecs.Get(w, e, component.TintComponent); ok && t.Color != nil {
		return t.Color
	}
	return fallback
}

func fade(c color.Color, alpha uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = alpha
	return n
}
