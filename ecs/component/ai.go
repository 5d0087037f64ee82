package component

import "time"

type AIState int

const (
	AIStateSpawnDelay AIState = iota
	AIStateChasing
	AIStateStopped
	AIStateAttacking
	AIStateDead
)

func (s AIState) String() string {
	switch s {
	case AIStateSpawnDelay:
		return "spawn_delay"
	case AIStateChasing:
		return "chasing"
	case AIStateStopped:
		return "stopped"
	case AIStateAttacking:
		return "attacking"
	case AIStateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// EnemyAI holds the tuning and runtime state of one enemy's behaviour loop.
type EnemyAI struct {
	MoveSpeed    float64
	StopDistance float64
	AttackRange  float64
	AttackLock   time.Duration
	SpawnDelay   time.Duration
	// AttackMoveMultiplier scales chase speed during the attack lock.
	AttackMoveMultiplier float64
	// FallingThreshold is the vertical velocity below which an airborne enemy
	// counts as falling.
	FallingThreshold float64

	State  AIState
	Facing float64
	// Target is the ecs.Entity being chased, set by whoever spawns the enemy.
	Target  uint64
	Falling bool
	// TargetMissingLogged suppresses repeat diagnostics.
	TargetMissingLogged bool
	SensorMissingLogged bool
}

var EnemyAIComponent = NewComponent[EnemyAI]()
