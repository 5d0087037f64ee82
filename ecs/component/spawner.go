package component

import (
	"time"

	"github.com/jakecoffman/cp"
)

// Spawner places waves of enemies around Origin.
type Spawner struct {
	Origin        cp.Vector
	Interval      time.Duration
	PerWave       int
	XSpread       float64
	YOffset       float64
	YJitter       float64
	MinSeparation float64
	MaxAttempts   int
	PushRange     float64
	OccupiedMask  uint
	// MaxAlive caps live enemies; 0 means unlimited.
	MaxAlive int

	// Target is the ecs.Entity handed to every spawned enemy.
	Target uint64
	Wave   int
}

var SpawnerComponent = NewComponent[Spawner]()
