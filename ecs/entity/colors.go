package entity

import "image/color"

// Fallbacks for prefabs that leave the colour out.
var (
	defaultPlayerColor = color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
	defaultEnemyColor  = color.NRGBA{R: 0xe5, G: 0x73, B: 0x73, A: 0xff}
	defaultGroundColor = color.NRGBA{R: 0x8d, G: 0x6e, B: 0x63, A: 0xff}
	defaultCoinColor   = color.NRGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
	defaultHeartColor  = color.NRGBA{R: 0xf0, G: 0x62, B: 0x92, A: 0xff}
)
