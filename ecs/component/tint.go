package component

import "image/color"

// Tint is the flat colour an entity is drawn with.
type Tint struct {
	Color color.Color
}

var TintComponent = NewComponent[Tint]()
