package component

import "github.com/milk9111/nodebreak/geom"

// Motion is the per-tick displacement of a moving node. Only collision
// response changes it.
type Motion struct {
	Delta geom.Vec2
}

var MotionComponent = NewComponent[Motion]()
