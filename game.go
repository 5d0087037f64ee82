package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/milk9111/skybrawl/ecs/entity"
	"github.com/milk9111/skybrawl/prefabs"
)

var backgroundColor = color.NRGBA{R: 0x1d, G: 0x22, B: 0x33, A: 0xff}

type Options struct {
	Level string
	Seed  uint64
	Debug bool
	Watch bool
}

type Game struct {
	opts Options

	specs    *entity.Specs
	scene    *entity.Scene
	restarts uint64

	cam     *camera
	hud     *hud
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	specs, err := entity.LoadSpecs(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{opts: opts, specs: specs, hud: newHUD()}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// restart rebuilds the scene from the current specs. Each restart gets a
// fresh seed derived from the original so runs differ but stay reproducible.
func (g *Game) restart() error {
	scene, err := entity.NewScene(g.specs, g.opts.Seed+g.restarts)
	if err != nil {
		return fmt.Errorf("game: restart: %w", err)
	}
	g.restarts++
	g.scene = scene
	g.cam = newCamera(g.playerPosition())
	g.hud.bind(scene)
	return nil
}

func (g *Game) Close() {
	g.hud.unbind()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.applyReloads()

	if g.scene.GameOver() {
		if restartPressed() {
			if err := g.restart(); err != nil {
				log.Printf("game: %v", err)
			}
			return nil
		}
		g.scene.Step()
		return nil
	}

	if pausePressed() {
		g.scene.Clock.Toggle()
	}
	if g.scene.Clock.IsPaused() {
		g.pauseUI.Update()
		return nil
	}

	pollInput(g.scene.Input())
	g.scene.Step()
	g.logEvents()
	g.cam.follow(g.playerPosition())
	return nil
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			applied, err := g.scene.Reload(name)
			switch {
			case err != nil:
				log.Printf("game: %v", err)
			case applied:
				log.Printf("game: reloaded %s", name)
			default:
				log.Printf("game: %s changed, applies on restart", name)
			}
		case err := <-g.watcher.Errors:
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) logEvents() {
	if !g.opts.Debug {
		return
	}
	for _, evt := range g.scene.World.Events().Peek() {
		switch data := evt.Data.(type) {
		case ecs.HurtEvent:
			log.Printf("game: %v hurt by %d (%d left)", data.Entity, data.Amount, data.Current)
		case ecs.PickupEvent:
			log.Printf("game: picked up %s x%d", data.Kind, data.Value)
		}
	}
}

func (g *Game) playerPosition() cp.Vector {
	if body, ok := ecs.Get(g.scene.World, g.scene.Player, component.BodyComponent); ok {
		return body.Position
	}
	return cp.Vector{}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	drawWorld(screen, g.scene.World, g.cam)
	if g.opts.Debug {
		if pw := g.scene.World.PhysicsWorld(); pw != nil {
			drawPhysicsDebug(screen, pw.Space(), g.cam)
		}
		drawStateDebug(screen, g.scene.World, g.scene.Player)
	}

	g.hud.draw(screen)

	switch {
	case g.scene.GameOver():
		g.hud.drawGameOver(screen)
	case g.scene.Clock.IsPaused():
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
