package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var (
	// ErrDegenerateVector is returned when a zero-length vector is normalized.
	ErrDegenerateVector = errors.New("geom: degenerate vector")
	// ErrEmptyShape is returned when a polygon is built without vertices.
	ErrEmptyShape = errors.New("geom: shape has no vertices")
)

// Vec2 is a 2D value vector. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides component-wise.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{v.X / o.X, v.Y / o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean norm.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector pointing along v. A zero vector has no
// direction and yields ErrDegenerateVector.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateVector)
	}
	return v.DivScalar(l), nil
}

// NormalizeOr returns the unit vector along v, or fallback when v is zero.
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	n, err := v.Normalize()
	if err != nil {
		return fallback
	}
	return n
}

func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// CP converts to a Chipmunk vector.
func (v Vec2) CP() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func FromCP(v cp.Vector) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}
