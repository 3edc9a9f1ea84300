package component

import "github.com/milk9111/nodebreak/geom"

// Transform is the top-left position of a node in field coordinates.
type Transform struct {
	Pos geom.Vec2
}

var TransformComponent = NewComponent[Transform]()
