package component

import "github.com/jakecoffman/cp"

// Body is the kinematic state systems read and write. The physics system
// copies Velocity into the Chipmunk body before each step and copies the
// simulated Position and Velocity back afterwards.
type Body struct {
	Position cp.Vector
	Velocity cp.Vector
	Width    float64
	Height   float64
	Mass     float64
	Category uint
}

var BodyComponent = NewComponent[Body]()

