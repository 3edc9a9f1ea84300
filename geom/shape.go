package geom

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Shape is a convex collision query object. Shapes are built from the live
// position of their owner each tick and never cached across ticks.
type Shape interface {
	// Project returns the scalar extent of the shape along a unit axis.
	Project(axis Vec2) (min, max float64)
	// Axes returns the candidate separating axes contributed by the shape.
	// Circles contribute none.
	Axes() []Vec2
	Center() Vec2
	// Bounds returns the axis-aligned bounding box. B holds the smallest Y
	// and T the largest, whatever the screen orientation.
	Bounds() cp.BB
}

// Circle is a disc; a zero radius makes it a point.
type Circle struct {
	C Vec2
	R float64
}

func NewCircle(center Vec2, radius float64) Circle {
	return Circle{C: center, R: radius}
}

func (c Circle) Project(axis Vec2) (float64, float64) {
	p := c.C.Dot(axis)
	return p - c.R, p + c.R
}

func (c Circle) Axes() []Vec2 {
	return nil
}

func (c Circle) Center() Vec2 {
	return c.C
}

func (c Circle) Bounds() cp.BB {
	return cp.NewBBForCircle(c.C.CP(), c.R)
}

// Polygon is a convex polygon in world space. Its vertices are traversed in a
// consistent order and its normals are unit length.
type Polygon struct {
	vertices []Vec2
	normals  []Vec2
	center   Vec2
}

// NewPolygon builds a polygon from world-space vertices. Explicit normals are
// normalized and used as the candidate axes as given; without them the edge
// normals are derived from the vertices.
func NewPolygon(vertices []Vec2, normals ...Vec2) (*Polygon, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyShape
	}

	p := &Polygon{vertices: append([]Vec2(nil), vertices...)}

	if len(normals) == 0 {
		normals = edgeNormals(p.vertices)
	}
	p.normals = make([]Vec2, 0, len(normals))
	for _, n := range normals {
		unit, err := n.Normalize()
		if err != nil {
			return nil, fmt.Errorf("polygon normal: %w", err)
		}
		p.normals = append(p.normals, unit)
	}

	var sum Vec2
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	p.center = sum.DivScalar(float64(len(p.vertices)))
	return p, nil
}

// edgeNormals skips zero-length edges, so a single point yields no normals.
func edgeNormals(vertices []Vec2) []Vec2 {
	out := make([]Vec2, 0, len(vertices))
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		edge := b.Sub(a)
		if edge.IsZero() {
			continue
		}
		out = append(out, Vec2{X: edge.Y, Y: -edge.X})
	}
	return out
}

func (p *Polygon) Project(axis Vec2) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range p.vertices {
		d := v.Dot(axis)
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

func (p *Polygon) Axes() []Vec2 {
	return p.normals
}

func (p *Polygon) Center() Vec2 {
	return p.center
}

func (p *Polygon) Vertices() []Vec2 {
	return p.vertices
}

func (p *Polygon) Bounds() cp.BB {
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, v := range p.vertices {
		bb = bb.Expand(v.CP())
	}
	return bb
}
