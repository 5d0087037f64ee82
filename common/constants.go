package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate.
	TPS = 60

	// PixelsPerUnit scales world units to screen pixels.
	PixelsPerUnit = 48.0

	// Gravity is applied along -Y; world space is Y-up.
	Gravity = -40.0
)

// FixedDelta is the duration of one simulation tick.
const FixedDelta = time.Second / TPS

// Collision categories. Every shape mask also carries CategoryQuery so that
// spatial queries can see it without any body colliding with the query bit.
const (
	CategoryGround uint = 1 << iota
	CategoryPlayer
	CategoryEnemy
	CategoryPickup
	CategoryQuery
)

const AllCategories = ^uint(0)
