package system

import (
	"log"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

// Placement bounds the candidate area and retry budget of one batch.
type Placement struct {
	XSpread       float64
	YOffset       float64
	YJitter       float64
	MinSeparation float64
	MaxAttempts   int
}

// PlaceBatch picks n positions around origin. A candidate is accepted when it
// is at least MinSeparation from every position placed earlier in the batch
// and occupied reports it free; after MaxAttempts rejections the last
// candidate is used anyway, so exactly n positions are always returned.
func PlaceBatch(origin cp.Vector, n int, p Placement, occupied func(pos cp.Vector, radius float64) bool, rng *rand.Rand) []cp.Vector {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	out := make([]cp.Vector, 0, n)
	for i := 0; i < n; i++ {
		candidate := cp.Vector{X: origin.X, Y: origin.Y + p.YOffset}
		for attempt := 0; attempt < p.MaxAttempts; attempt++ {
			candidate = cp.Vector{
				X: origin.X + uniform(rng, -p.XSpread, p.XSpread),
				Y: origin.Y + p.YOffset + uniform(rng, -p.YJitter, p.YJitter),
			}
			if !tooClose(out, candidate, p.MinSeparation) && (occupied == nil || !occupied(candidate, p.MinSeparation)) {
				break
			}
		}
		out = append(out, candidate)
	}
	return out
}

func tooClose(placed []cp.Vector, candidate cp.Vector, minSep float64) bool {
	for _, pos := range placed {
		if distanceSq(pos, candidate) < minSep*minSep {
			return true
		}
	}
	return false
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*rng.Float64()
}

// SpawnFunc instantiates one enemy at pos chasing target.
type SpawnFunc func(w *ecs.World, pos cp.Vector, target ecs.Entity) (ecs.Entity, error)

// SpawnSystem arms each spawner's wave timer. The first wave fires on the
// tick after the spawner appears, then every Interval.
type SpawnSystem struct {
	Spatial SpatialQuery
	Rand    *rand.Rand
	Spawn   SpawnFunc
	Script  *WaveScript
	Logger  *log.Logger
}

func NewSpawnSystem(spawn SpawnFunc, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{Spawn: spawn, Rand: rng, Logger: log.Default()}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.SpawnerComponent.Kind()) {
		if !isActive(w, e) {
			continue
		}
		if _, pending := w.Timers().Pending(e, ecs.SlotWave); pending {
			continue
		}
		w.Timers().Schedule(e, ecs.SlotWave, w.Now(), s.runWave)
	}
}

func (s *SpawnSystem) runWave(w *ecs.World, e ecs.Entity) {
	sp, ok := ecs.Get(w, e, component.SpawnerComponent)
	if !ok {
		return
	}
	w.Timers().Schedule(e, ecs.SlotWave, w.Now()+sp.Interval, s.runWave)
	s.SpawnWave(w, e, sp)
}

// SpawnWave places one wave for spawner e and returns the new enemies.
func (s *SpawnSystem) SpawnWave(w *ecs.World, e ecs.Entity, sp *component.Spawner) []ecs.Entity {
	if s == nil || sp == nil || s.Spawn == nil {
		return nil
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewPCG(uint64(e), 0x5eed))
	}
	sp.Wave++

	count := sp.PerWave
	if s.Script != nil {
		n, err := s.Script.WaveSize(sp.Wave, sp.PerWave)
		if err != nil {
			s.logf("spawn: wave script: %v", err)
		} else {
			count = n
		}
	}
	if sp.MaxAlive > 0 {
		if room := sp.MaxAlive - liveEnemies(w); count > room {
			count = room
		}
	}
	if count <= 0 {
		return nil
	}

	q := spatialFor(w, s.Spatial)
	occupied := func(pos cp.Vector, radius float64) bool {
		return q != nil && len(q.QueryCircle(pos, radius, sp.OccupiedMask)) > 0
	}
	placement := Placement{
		XSpread:       sp.XSpread,
		YOffset:       sp.YOffset,
		YJitter:       sp.YJitter,
		MinSeparation: sp.MinSeparation,
		MaxAttempts:   sp.MaxAttempts,
	}

	spawned := make([]ecs.Entity, 0, count)
	for _, pos := range PlaceBatch(sp.Origin, count, placement, occupied, s.Rand) {
		enemy, err := s.Spawn(w, pos, ecs.Entity(sp.Target))
		if err != nil {
			s.logf("spawn: wave %d: %v", sp.Wave, err)
			continue
		}
		if body, ok := ecs.Get(w, enemy, component.BodyComponent); ok {
			body.Velocity.X = uniform(s.Rand, -sp.PushRange, sp.PushRange)
			if pb, ok := w.PhysicsWorld().Body(enemy); ok {
				pb.SetVelocityVector(body.Velocity)
			}
		}
		w.Events().Push(ecs.Event{Type: ecs.EventSpawned, Data: ecs.SpawnedEvent{Entity: enemy, Wave: sp.Wave}})
		spawned = append(spawned, enemy)
	}
	s.logf("spawn: wave %d placed %d enemies", sp.Wave, len(spawned))
	return spawned
}

func liveEnemies(w *ecs.World) int {
	n := 0
	for _, e := range w.Query(component.EnemyTagComponent.Kind()) {
		if isActive(w, e) {
			n++
		}
	}
	return n
}

func (s *SpawnSystem) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
