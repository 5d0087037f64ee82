package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

// Lifecycle is the active/enabled flag checked at the top of every behaviour
// tick. DeathHandled marks that the one-shot death transition already ran.
type Lifecycle struct {
	Active       bool
	DeathHandled bool
}

var LifecycleComponent = NewComponent[Lifecycle]()
