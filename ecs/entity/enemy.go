package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/clock"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/milk9111/skybrawl/ecs/system"
	"github.com/milk9111/skybrawl/prefabs"
)

const enemyMask = common.CategoryGround | common.CategoryPlayer | common.CategoryEnemy

// NewEnemy spawns one enemy at pos chasing target. It starts in its spawn
// delay and only begins chasing once the delay expires.
func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec, pos cp.Vector, target ecs.Entity) (_ ecs.Entity, err error) {
	if spec == nil {
		if spec, err = prefabs.LoadEnemySpec(); err != nil {
			return 0, fmt.Errorf("enemy: load spec: %w", err)
		}
	}

	entity := w.CreateEntity()
	defer func() {
		if err != nil {
			w.DestroyEntity(entity)
		}
	}()

	if err := ecs.Add(w, entity, component.EnemyTagComponent, &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.LifecycleComponent, &component.Lifecycle{Active: true}); err != nil {
		return 0, fmt.Errorf("enemy: add lifecycle: %w", err)
	}

	ai := &component.EnemyAI{
		MoveSpeed:            spec.MoveSpeed,
		StopDistance:         spec.StopDistance,
		AttackRange:          spec.AttackRange,
		AttackLock:           common.Seconds(spec.AttackLock),
		SpawnDelay:           common.Seconds(spec.SpawnDelay),
		AttackMoveMultiplier: spec.AttackMoveMultiplier,
		FallingThreshold:     spec.FallingThreshold,
		Facing:               1,
		Target:               uint64(target),
	}
	if err := ecs.Add(w, entity, component.EnemyAIComponent, ai); err != nil {
		return 0, fmt.Errorf("enemy: add ai: %w", err)
	}

	if err := ecs.Add(w, entity, component.BodyComponent, &component.Body{
		Position: pos,
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Mass:     spec.Collider.Mass,
		Category: common.CategoryEnemy,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.GroundSensorComponent, groundSensor(spec.GroundSensor)); err != nil {
		return 0, fmt.Errorf("enemy: add ground sensor: %w", err)
	}

	// The swing is centred on the enemy and reaches exactly its attack range.
	radius := spec.Attack.Radius
	if radius <= 0 {
		radius = spec.AttackRange
	}
	if err := ecs.Add(w, entity, component.CombatProfileComponent, &component.CombatProfile{
		OriginOffset: cp.Vector{X: spec.Attack.OffsetX, Y: spec.Attack.OffsetY},
		Radius:       radius,
		Damage:       spec.Attack.Damage,
		Cooldown:     clock.NewCooldown(common.Seconds(spec.Attack.Cooldown)),
		TargetMask:   common.CategoryPlayer,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add combat profile: %w", err)
	}

	health := component.NewHealth(spec.Health)
	health.DestroyDelay = common.Seconds(spec.DestroyDelay)
	if err := ecs.Add(w, entity, component.HealthComponent, health); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.TintComponent, &component.Tint{Color: spec.Color.Or(defaultEnemyColor)}); err != nil {
		return 0, fmt.Errorf("enemy: add tint: %w", err)
	}

	if pw := w.PhysicsWorld(); pw != nil {
		if err := checkCollider(spec.Collider); err != nil {
			return 0, fmt.Errorf("enemy: %w", err)
		}
		pw.AddDynamicBody(entity, pos, spec.Collider.Mass)
		pw.AddBox(entity, spec.Collider.Width, spec.Collider.Height, common.CategoryEnemy, enemyMask)
		if spec.Head != nil && spec.Head.Radius > 0 {
			head := w.CreateEntity()
			offset := cp.Vector{X: spec.Head.OffsetX, Y: spec.Head.OffsetY}
			pw.AddChildCircle(head, entity, spec.Head.Radius, offset, common.CategoryEnemy, enemyMask)
		}
	}

	system.StartSpawnDelay(w, entity, ai)

	return entity, nil
}

// EnemySpawner adapts NewEnemy to a spawner callback. spec is read on every
// call, so swapping it changes future waves only.
func EnemySpawner(spec func() *prefabs.EnemySpec) system.SpawnFunc {
	return func(w *ecs.World, pos cp.Vector, target ecs.Entity) (ecs.Entity, error) {
		return NewEnemy(w, spec(), pos, target)
	}
}
