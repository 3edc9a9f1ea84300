package geom

import (
	"fmt"
	"strings"
)

// NodeKind identifies one of the fixed-size node primitives used as game
// pieces. Each kind knows its footprint and how to build a collision shape
// from the top-left corner of the node.
type NodeKind uint8

const (
	KindDot NodeKind = iota
	KindRectangle
	KindViewer
)

const (
	DotSize   = 12
	DotRadius = 5.5

	RectangleWidth  = 79
	RectangleHeight = 17

	ViewerWidth  = 83
	ViewerHeight = 17
	ViewerBevel  = 15
)

// viewerNormals approximate the bevel slopes; the hexagon has no vertical
// edge so no X axis is tested against it.
var viewerNormals = []Vec2{
	{0, 1}, {-0.5, 1}, {0.5, 1},
	{0, -1}, {-0.5, -1}, {0.5, -1},
}

func (k NodeKind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindRectangle:
		return "rectangle"
	case KindViewer:
		return "viewer"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

func ParseNodeKind(s string) (NodeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dot":
		return KindDot, nil
	case "rectangle", "rect":
		return KindRectangle, nil
	case "viewer":
		return KindViewer, nil
	default:
		return 0, fmt.Errorf("geom: unknown node kind %q", s)
	}
}

// Size returns the width and height of the node footprint.
func (k NodeKind) Size() Vec2 {
	switch k {
	case KindDot:
		return Vec2{DotSize, DotSize}
	case KindRectangle:
		return Vec2{RectangleWidth, RectangleHeight}
	case KindViewer:
		return Vec2{ViewerWidth, ViewerHeight}
	default:
		return Vec2{}
	}
}

// CenterAt returns the middle of a node whose top-left corner is pos.
func (k NodeKind) CenterAt(pos Vec2) Vec2 {
	return pos.Add(k.Size().Scale(0.5))
}

// ShapeAt builds the collision shape of a node whose top-left corner is pos.
func (k NodeKind) ShapeAt(pos Vec2) Shape {
	switch k {
	case KindDot:
		return NewCircle(k.CenterAt(pos), DotRadius)
	case KindRectangle:
		return mustPolygon(RectangleVertices(pos, RectangleWidth, RectangleHeight))
	case KindViewer:
		return mustPolygon(ViewerVertices(pos), viewerNormals...)
	default:
		return NewCircle(pos, 0)
	}
}

// RectangleVertices lists the corners of a w×h rectangle at pos.
func RectangleVertices(pos Vec2, w, h float64) []Vec2 {
	return []Vec2{
		pos,
		pos.Add(Vec2{0, h}),
		pos.Add(Vec2{w, h}),
		pos.Add(Vec2{w, 0}),
	}
}

// ViewerVertices lists the corners of the bevelled viewer hexagon at pos.
func ViewerVertices(pos Vec2) []Vec2 {
	const w, h, b = ViewerWidth, ViewerHeight, ViewerBevel
	return []Vec2{
		pos.Add(Vec2{0, h / 2.0}),
		pos.Add(Vec2{b, h}),
		pos.Add(Vec2{w - b, h}),
		pos.Add(Vec2{w, h / 2.0}),
		pos.Add(Vec2{w - b, 0}),
		pos.Add(Vec2{b, 0}),
	}
}

// mustPolygon is only used with the fixed node outlines above, which always
// have vertices and non-zero normals.
func mustPolygon(vertices []Vec2, normals ...Vec2) *Polygon {
	p, err := NewPolygon(vertices, normals...)
	if err != nil {
		panic(err)
	}
	return p
}
