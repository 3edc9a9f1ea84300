package component

import "github.com/milk9111/nodebreak/geom"

// Collider gives an entity a collision shape of the given node kind. The shape
// is rebuilt from the Transform whenever it is queried.
type Collider struct {
	Kind geom.NodeKind
}

// Shape builds the collision shape at the current position.
func (c Collider) Shape(t Transform) geom.Shape {
	return c.Kind.ShapeAt(t.Pos)
}

var ColliderComponent = NewComponent[Collider]()
