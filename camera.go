package main

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/common"
)

const cameraFollow = 0.12

// camera maps Y-up world units onto the Y-down screen, centred on X/Y.
type camera struct {
	X, Y float64
	Zoom float64
}

func newCamera(at cp.Vector) *camera {
	return &camera{X: at.X, Y: at.Y, Zoom: common.PixelsPerUnit}
}

func (c *camera) follow(target cp.Vector) {
	c.X = common.Lerp(c.X, target.X, cameraFollow)
	c.Y = common.Lerp(c.Y, target.Y, cameraFollow)
}

func (c *camera) toScreen(v cp.Vector) (float32, float32) {
	x := (v.X-c.X)*c.Zoom + common.BaseWidth/2
	y := common.BaseHeight/2 - (v.Y-c.Y)*c.Zoom
	return float32(x), float32(y)
}

func (c *camera) scale(d float64) float32 {
	return float32(d * c.Zoom)
}
