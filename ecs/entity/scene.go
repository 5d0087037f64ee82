package entity

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/clock"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/milk9111/skybrawl/ecs/system"
	"github.com/milk9111/skybrawl/prefabs"
)

// Specs is every prefab a scene is built from.
type Specs struct {
	LevelFile string

	Level   *prefabs.LevelSpec
	Player  *prefabs.PlayerSpec
	Enemy   *prefabs.EnemySpec
	Spawner *prefabs.SpawnerSpec
	Coin    *prefabs.PickupSpec
	Heart   *prefabs.PickupSpec
}

func LoadSpecs(levelFile string) (*Specs, error) {
	if levelFile == "" {
		levelFile = "level.yaml"
	}
	specs := &Specs{LevelFile: levelFile}

	level, err := prefabs.LoadSpec[prefabs.LevelSpec](levelFile)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	specs.Level = &level

	if specs.Player, err = prefabs.LoadPlayerSpec(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if specs.Enemy, err = prefabs.LoadEnemySpec(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if specs.Spawner, err = prefabs.LoadSpawnerSpec(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	coin, err := prefabs.LoadSpec[prefabs.PickupSpec]("coin.yaml")
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	heart, err := prefabs.LoadSpec[prefabs.PickupSpec]("heart.yaml")
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	specs.Coin, specs.Heart = &coin, &heart

	return specs, nil
}

// Scene is one playable world: the ECS world with its clock, physics and
// systems, plus the entities the game loop talks to directly.
type Scene struct {
	World  *ecs.World
	Clock  *clock.SimClock
	Player ecs.Entity
	Spawn  *system.SpawnSystem

	specs *Specs
}

// NewScene builds the level described by specs. seed drives spawn placement;
// the same seed and input replay the same game.
func NewScene(specs *Specs, seed uint64) (*Scene, error) {
	if specs == nil || specs.Level == nil {
		return nil, fmt.Errorf("scene: no level")
	}

	w := ecs.NewWorld()
	clk := clock.NewSimClock(common.FixedDelta)
	w.SetClock(clk)
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(cp.Vector{Y: common.Gravity}))

	s := &Scene{World: w, Clock: clk, specs: specs}

	script, err := loadWaveScript(specs.Spawner)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	combat := system.NewCombatResolver()
	s.Spawn = system.NewSpawnSystem(
		EnemySpawner(func() *prefabs.EnemySpec { return s.specs.Enemy }),
		rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	)
	s.Spawn.Script = script

	w.AddSystem(system.NewTimerSystem())
	w.AddSystem(system.NewGroundSensorSystem())
	w.AddSystem(system.NewPlayerControlSystem(combat))
	w.AddSystem(system.NewDeathSystem())
	w.AddSystem(system.NewAISystem(combat))
	w.AddSystem(system.NewDeathSystem())
	w.AddSystem(system.NewLocomotionSystem())
	w.AddSystem(system.NewPickupSystem())
	w.AddSystem(s.Spawn)
	w.AddSystem(system.NewPhysicsSystem())

	if err := s.buildLevel(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) buildLevel() error {
	level := s.specs.Level
	groundColor := level.GroundColor.Or(defaultGroundColor)
	for i, seg := range level.Ground {
		if _, err := NewGround(s.World, seg, groundColor); err != nil {
			return fmt.Errorf("scene: ground %d: %w", i, err)
		}
	}

	player, err := NewPlayer(s.World, s.specs.Player, point(level.PlayerStart))
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	s.Player = player

	for i, at := range level.Spawners {
		if _, err := NewSpawner(s.World, s.specs.Spawner, point(at), player); err != nil {
			return fmt.Errorf("scene: spawner %d: %w", i, err)
		}
	}
	for _, at := range level.Coins {
		if _, err := NewPickup(s.World, s.specs.Coin, point(at)); err != nil {
			return fmt.Errorf("scene: coin: %w", err)
		}
	}
	for _, at := range level.Hearts {
		if _, err := NewPickup(s.World, s.specs.Heart, point(at)); err != nil {
			return fmt.Errorf("scene: heart: %w", err)
		}
	}
	return nil
}

// Step advances one fixed tick. It reports false, and changes nothing, while
// the clock is paused.
func (s *Scene) Step() bool {
	if s == nil || !s.Clock.Tick() {
		return false
	}
	s.World.Update()
	return true
}

// Input returns the player's input slot for the current tick.
func (s *Scene) Input() *component.Input {
	in, _ := ecs.Get(s.World, s.Player, component.InputComponent)
	return in
}

func (s *Scene) PlayerHealth() *component.Health {
	h, _ := ecs.Get(s.World, s.Player, component.HealthComponent)
	return h
}

func (s *Scene) PlayerWallet() *component.Wallet {
	wallet, _ := ecs.Get(s.World, s.Player, component.WalletComponent)
	return wallet
}

// GameOver reports whether the player has run out of lives.
func (s *Scene) GameOver() bool {
	h := s.PlayerHealth()
	return h == nil || h.IsDead()
}

func (s *Scene) Specs() *Specs {
	return s.specs
}

// Reload re-reads the prefab named by a watcher event. Enemy and spawner
// changes apply to future waves; player and level changes wait for a restart.
// It reports whether anything was applied to the running scene.
func (s *Scene) Reload(name string) (bool, error) {
	switch {
	case name == "enemy.yaml":
		spec, err := prefabs.LoadEnemySpec()
		if err != nil {
			return false, fmt.Errorf("scene: reload %s: %w", name, err)
		}
		s.specs.Enemy = spec
		return true, nil
	case name == "spawner.yaml":
		spec, err := prefabs.LoadSpawnerSpec()
		if err != nil {
			return false, fmt.Errorf("scene: reload %s: %w", name, err)
		}
		script, err := loadWaveScript(spec)
		if err != nil {
			return false, fmt.Errorf("scene: reload %s: %w", name, err)
		}
		s.specs.Spawner = spec
		s.Spawn.Script = script
		ecs.ForEach(s.World, component.SpawnerComponent, func(_ ecs.Entity, sp *component.Spawner) {
			ApplySpawnerSpec(sp, spec)
		})
		return true, nil
	case strings.HasPrefix(name, "scripts/"):
		if s.specs.Spawner == nil || "scripts/"+s.specs.Spawner.Script != name {
			return false, nil
		}
		script, err := loadWaveScript(s.specs.Spawner)
		if err != nil {
			return false, fmt.Errorf("scene: reload %s: %w", name, err)
		}
		s.Spawn.Script = script
		return true, nil
	case name == "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return false, fmt.Errorf("scene: reload %s: %w", name, err)
		}
		s.specs.Player = spec
		return false, nil
	case name == s.specs.LevelFile:
		level, err := prefabs.LoadSpec[prefabs.LevelSpec](name)
		if err != nil {
			return false, fmt.Errorf("scene: reload %s: %w", name, err)
		}
		s.specs.Level = &level
		return false, nil
	}
	return false, nil
}

func loadWaveScript(spec *prefabs.SpawnerSpec) (*system.WaveScript, error) {
	if spec == nil || spec.Script == "" {
		return nil, nil
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, err
	}
	return system.NewWaveScript(src)
}

func point(p prefabs.PointSpec) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}
