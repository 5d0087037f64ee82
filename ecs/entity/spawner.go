package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
	"github.com/milk9111/skybrawl/prefabs"
)

func NewSpawner(w *ecs.World, spec *prefabs.SpawnerSpec, origin cp.Vector, target ecs.Entity) (ecs.Entity, error) {
	if spec == nil {
		var err error
		if spec, err = prefabs.LoadSpawnerSpec(); err != nil {
			return 0, fmt.Errorf("spawner: load spec: %w", err)
		}
	}

	entity := w.CreateEntity()

	if err := ecs.Add(w, entity, component.LifecycleComponent, &component.Lifecycle{Active: true}); err != nil {
		return 0, fmt.Errorf("spawner: add lifecycle: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpawnerComponent, &component.Spawner{
		Origin:        origin,
		Interval:      common.Seconds(spec.Interval),
		PerWave:       spec.PerWave,
		XSpread:       spec.XSpread,
		YOffset:       spec.YOffset,
		YJitter:       spec.YJitter,
		MinSeparation: spec.MinSeparation,
		MaxAttempts:   spec.MaxAttempts,
		PushRange:     spec.Push,
		OccupiedMask:  common.CategoryEnemy,
		MaxAlive:      spec.MaxAlive,
		Target:        uint64(target),
	}); err != nil {
		return 0, fmt.Errorf("spawner: add spawner: %w", err)
	}

	return entity, nil
}

// ApplySpawnerSpec retunes a live spawner. Origin, target and the wave
// counter are kept.
func ApplySpawnerSpec(sp *component.Spawner, spec *prefabs.SpawnerSpec) {
	if sp == nil || spec == nil {
		return
	}
	sp.Interval = common.Seconds(spec.Interval)
	sp.PerWave = spec.PerWave
	sp.XSpread = spec.XSpread
	sp.YOffset = spec.YOffset
	sp.YJitter = spec.YJitter
	sp.MinSeparation = spec.MinSeparation
	sp.MaxAttempts = spec.MaxAttempts
	sp.PushRange = spec.Push
	sp.MaxAlive = spec.MaxAlive
}
