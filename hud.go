package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs/entity"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding   = 12.0
	hudHeartSize = 18.0
	hudSpacing   = 6.0
)

// hud mirrors the player's lives and coins. It never polls: both values
// arrive through change subscriptions, which replay the current value on bind.
type hud struct {
	face text.Face

	lives    int
	maxLives int
	coins    int

	unsubscribe []func()
}

func newHUD() *hud {
	return &hud{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *hud) bind(s *entity.Scene) {
	h.unbind()
	if health := s.PlayerHealth(); health != nil {
		h.maxLives = health.Max
		h.unsubscribe = append(h.unsubscribe, health.OnChanged(func(current int) {
			h.lives = current
		}))
	}
	if wallet := s.PlayerWallet(); wallet != nil {
		h.unsubscribe = append(h.unsubscribe, wallet.OnChanged(func(total int) {
			h.coins = total
		}))
	}
}

func (h *hud) unbind() {
	for _, fn := range h.unsubscribe {
		fn()
	}
	h.unsubscribe = nil
}

func (h *hud) draw(screen *ebiten.Image) {
	for i := 0; i < h.maxLives; i++ {
		clr := color.Color(colornames.Crimson)
		if i >= h.lives {
			clr = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
		}
		x := float32(hudPadding + float64(i)*(hudHeartSize+hudSpacing))
		vector.FillRect(screen, x, hudPadding, hudHeartSize, hudHeartSize, clr, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudPadding, hudPadding+hudHeartSize+hudSpacing)
	op.ColorScale.ScaleWithColor(colornames.Gold)
	text.Draw(screen, fmt.Sprintf("Coins: %d", h.coins), h.face, op)
}

func (h *hud) drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, color.NRGBA{A: 0x90}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(common.BaseWidth/2, common.BaseHeight/2)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, fmt.Sprintf("GAME OVER  -  %d coins  -  press R to restart", h.coins), h.face, op)
}
