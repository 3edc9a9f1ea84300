package component

import "image/color"

// Appearance describes how the render pass draws a node. It has no effect on
// the simulation. Alpha is only honoured while the entity carries a Fade.
type Appearance struct {
	Class string
	Label string
	Color color.RGBA
	Alpha float32
}

var AppearanceComponent = NewComponent[Appearance]()
