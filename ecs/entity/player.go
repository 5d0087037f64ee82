package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/clock"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/milk9111/skybrawl/prefabs"
)

func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, pos cp.Vector) (_ ecs.Entity, err error) {
	if spec == nil {
		if spec, err = prefabs.LoadPlayerSpec(); err != nil {
			return 0, fmt.Errorf("player: load spec: %w", err)
		}
	}

	entity := w.CreateEntity()
	defer func() {
		if err != nil {
			w.DestroyEntity(entity)
		}
	}()

	if err := ecs.Add(w, entity, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.LifecycleComponent, &component.Lifecycle{Active: true}); err != nil {
		return 0, fmt.Errorf("player: add lifecycle: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.LocomotionComponent, &component.Locomotion{
		MaxSpeed:             spec.MoveSpeed,
		JumpSpeed:            spec.JumpSpeed,
		AttackMoveMultiplier: spec.AttackMoveMultiplier,
		MaxSlopeAngle:        spec.MaxSlopeDeg * math.Pi / 180,
		JumpCutFactor:        spec.JumpCut,
		AttackLock:           common.Seconds(spec.AttackLock),
	}); err != nil {
		return 0, fmt.Errorf("player: add locomotion: %w", err)
	}

	if err := ecs.Add(w, entity, component.LocomotionStateComponent, component.NewLocomotionState()); err != nil {
		return 0, fmt.Errorf("player: add locomotion state: %w", err)
	}

	if err := ecs.Add(w, entity, component.BodyComponent, &component.Body{
		Position: pos,
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Mass:     spec.Collider.Mass,
		Category: common.CategoryPlayer,
	}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.GroundSensorComponent, groundSensor(spec.GroundSensor)); err != nil {
		return 0, fmt.Errorf("player: add ground sensor: %w", err)
	}

	if err := ecs.Add(w, entity, component.CombatProfileComponent, &component.CombatProfile{
		OriginOffset: cp.Vector{X: spec.Attack.OffsetX, Y: spec.Attack.OffsetY},
		Radius:       spec.Attack.Radius,
		Damage:       spec.Attack.Damage,
		Cooldown:     clock.NewCooldown(common.Seconds(spec.Attack.Cooldown)),
		TargetMask:   common.CategoryEnemy,
	}); err != nil {
		return 0, fmt.Errorf("player: add combat profile: %w", err)
	}

	// The player's health counts lives: every accepted hit costs one.
	health := component.NewHealth(spec.Lives)
	health.HitCost = 1
	health.Invincibility = common.Seconds(spec.Invincibility)
	if err := ecs.Add(w, entity, component.HealthComponent, health); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.WalletComponent, component.NewWallet()); err != nil {
		return 0, fmt.Errorf("player: add wallet: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollectorComponent, &component.Collector{Range: spec.PickupRange}); err != nil {
		return 0, fmt.Errorf("player: add collector: %w", err)
	}

	if err := ecs.Add(w, entity, component.TintComponent, &component.Tint{Color: spec.Color.Or(defaultPlayerColor)}); err != nil {
		return 0, fmt.Errorf("player: add tint: %w", err)
	}

	if pw := w.PhysicsWorld(); pw != nil {
		if err := checkCollider(spec.Collider); err != nil {
			return 0, fmt.Errorf("player: %w", err)
		}
		pw.AddDynamicBody(entity, pos, spec.Collider.Mass)
		pw.AddBox(entity, spec.Collider.Width, spec.Collider.Height, common.CategoryPlayer, common.CategoryGround|common.CategoryEnemy)
	}

	return entity, nil
}

func groundSensor(spec prefabs.GroundSensorSpec) *component.GroundSensor {
	return &component.GroundSensor{
		FootOffset: cp.Vector{Y: spec.OffsetY},
		Radius:     spec.Radius,
		RayLength:  spec.RayLength,
		Mask:       common.CategoryGround,
	}
}

func checkCollider(spec prefabs.ColliderSpec) error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("collider %vx%v must have a positive size", spec.Width, spec.Height)
	}
	return nil
}
