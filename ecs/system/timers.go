package system

import "github.com/milk9111/skybrawl/ecs"

// TimerSystem fires the world's due continuations. It runs first in the tick
// so expiries are visible to every later system.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Timers().RunDue(w, w.Now())
}
