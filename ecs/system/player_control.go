package system

import (
	"time"

	"github.com/milk9111/skybrawl/common"
	"github.com/milk9111/skybrawl/ecs"
	"github.com/milk9111/skybrawl/ecs/component"
)

const defaultAttackLock = 350 * time.Millisecond

// PlayerControlSystem copies this tick's input into the player's locomotion
// state, starts attack locks and swings the player's weapon.
type PlayerControlSystem struct {
	Combat *CombatResolver
}

func NewPlayerControlSystem(combat *CombatResolver) *PlayerControlSystem {
	return &PlayerControlSystem{Combat: combat}
}

func (s *PlayerControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), component.LocomotionStateComponent.Kind()) {
		in, _ := ecs.Get(w, e, component.InputComponent)
		st, _ := ecs.Get(w, e, component.LocomotionStateComponent)
		if !isActive(w, e) {
			*in = component.Input{}
			continue
		}

		st.MoveX = common.Clamp(in.MoveX, -1, 1)
		if in.AttackPressed {
			s.startAttack(w, e, st)
		}
		if !st.AttackLocked {
			if in.JumpPressed {
				st.JumpRequested = true
			}
			if in.JumpReleased {
				st.JumpReleased = true
			}
		}

		in.JumpPressed = false
		in.JumpReleased = false
		in.AttackPressed = false
	}
}

// startAttack (re)starts the attack lock. A pending lock expiry is replaced,
// so pressing attack again extends the lock instead of stacking timers.
func (s *PlayerControlSystem) startAttack(w *ecs.World, e ecs.Entity, st *component.LocomotionState) {
	st.AttackLocked = true
	st.JumpRequested = false
	st.JumpReleased = false
	if body, ok := ecs.Get(w, e, component.BodyComponent); ok {
		body.Velocity.X = 0
	}

	lock := defaultAttackLock
	if cfg, ok := ecs.Get(w, e, component.LocomotionComponent); ok {
		lock = cfg.AttackLock
	}
	w.Timers().Schedule(e, ecs.SlotAttackLock, w.Now()+lock, func(w *ecs.World, e ecs.Entity) {
		if st, ok := ecs.Get(w, e, component.LocomotionStateComponent); ok {
			st.AttackLocked = false
		}
	})
	w.Events().Push(ecs.Event{Type: ecs.EventAttack, Data: ecs.AttackEvent{Attacker: e}})

	if s.Combat != nil {
		s.Combat.Attempt(w, e)
	}
}
