package component

// Input stores this tick's input for an entity. Pressed/Released flags are
// edge-triggered and are cleared by the consumer after one tick.
type Input struct {
	MoveX           float64
	JumpPressed     bool
	JumpReleased    bool
	AttackPressed   bool
	InteractPressed bool
}

var InputComponent = NewComponent[Input]()
