package system

import (
	"log"
	"math"

	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// AISystem runs the enemy behaviour loop once per tick: spawn delay, chase,
// stop, attack and dead. Distances are compared squared.
type AISystem struct {
	Combat *CombatResolver
	Logger *log.Logger
}

func NewAISystem(combat *CombatResolver) *AISystem {
	return &AISystem{Combat: combat, Logger: log.Default()}
}

// StartSpawnDelay puts a freshly spawned enemy into its spawn delay and arms
// the continuation that enables chasing.
func StartSpawnDelay(w *ecs.World, e ecs.Entity, ai *component.EnemyAI) {
	if w == nil || ai == nil {
		return
	}
	if ai.SpawnDelay <= 0 {
		ai.State = component.AIStateChasing
		return
	}
	ai.State = component.AIStateSpawnDelay
	w.Timers().Schedule(e, ecs.SlotChaseEnable, w.Now()+ai.SpawnDelay, func(w *ecs.World, e ecs.Entity) {
		if ai, ok := ecs.Get(w, e, component.EnemyAIComponent); ok && ai.State == component.AIStateSpawnDelay {
			ai.State = component.AIStateChasing
		}
	})
}

func (s *AISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.EnemyAIComponent.Kind(), component.BodyComponent.Kind()) {
		ai, _ := ecs.Get(w, e, component.EnemyAIComponent)
		body, _ := ecs.Get(w, e, component.BodyComponent)

		if !isActive(w, e) {
			if h, ok := ecs.Get(w, e, component.HealthComponent); ok && h.IsDead() {
				ai.State = component.AIStateDead
			}
			continue
		}
		if ai.State == component.AIStateDead {
			continue
		}

		grounded := false
		if gs, ok := ecs.Get(w, e, component.GroundStateComponent); ok {
			grounded = gs.Grounded
		} else if !ai.SensorMissingLogged {
			ai.SensorMissingLogged = true
			s.logf("ai: %v has no ground sensor; it will never chase or attack", e)
		}
		ai.Falling = !grounded && body.Velocity.Y < ai.FallingThreshold

		if ai.State == component.AIStateSpawnDelay {
			continue
		}

		target := ecs.Entity(ai.Target)
		targetBody, ok := ecs.Get(w, target, component.BodyComponent)
		if !w.IsAlive(target) || !ok {
			if !ai.TargetMissingLogged {
				ai.TargetMissingLogged = true
				s.logf("ai: %v has no target", e)
			}
			continue
		}

		dx := targetBody.Position.X - body.Position.X
		if math.Abs(dx) >= 0.001 {
			ai.Facing = math.Copysign(1, dx)
		}
		distSq := distanceSq(body.Position, targetBody.Position)

		if ai.State == component.AIStateAttacking {
			if grounded {
				body.Velocity.X = ai.Facing * ai.MoveSpeed * ai.AttackMoveMultiplier
			} else {
				body.Velocity.X = 0
			}
			continue
		}

		// airborne enemies keep their horizontal momentum and only fall
		if !grounded {
			continue
		}

		if distSq > ai.StopDistance*ai.StopDistance {
			ai.State = component.AIStateChasing
			if math.Abs(dx) >= 0.001 {
				body.Velocity.X = ai.Facing * ai.MoveSpeed
			} else {
				body.Velocity.X = 0
			}
		} else {
			ai.State = component.AIStateStopped
			body.Velocity.X = 0
		}

		if distSq <= ai.AttackRange*ai.AttackRange && s.attackReady(w, e) {
			s.startAttack(w, e, ai, body)
		}
	}
}

func (s *AISystem) attackReady(w *ecs.World, e ecs.Entity) bool {
	profile, ok := ecs.Get(w, e, component.CombatProfileComponent)
	return ok && profile.Cooldown.Ready(w.Now())
}

func (s *AISystem) startAttack(w *ecs.World, e ecs.Entity, ai *component.EnemyAI, body *component.Body) {
	ai.State = component.AIStateAttacking
	body.Velocity.X = ai.Facing * ai.MoveSpeed * ai.AttackMoveMultiplier
	w.Events().Push(ecs.Event{Type: ecs.EventAttack, Data: ecs.AttackEvent{Attacker: e}})

	if s.Combat != nil {
		s.Combat.Attempt(w, e)
	}

	w.Timers().Schedule(e, ecs.SlotAttackLock, w.Now()+ai.AttackLock, func(w *ecs.World, e ecs.Entity) {
		ai, ok := ecs.Get(w, e, component.EnemyAIComponent)
		if !ok || ai.State != component.AIStateAttacking {
			return
		}
		ai.State = component.AIStateChasing
		body, ok := ecs.Get(w, e, component.BodyComponent)
		if !ok {
			return
		}
		if tb, ok := ecs.Get(w, ecs.Entity(ai.Target), component.BodyComponent); ok {
			if distanceSq(body.Position, tb.Position) <= ai.StopDistance*ai.StopDistance {
				ai.State = component.AIStateStopped
			}
		}
	})
}

func (s *AISystem) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
