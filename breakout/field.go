package breakout

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/nodebreak/ecs/system"
	"github.com/milk9111/nodebreak/geom"
)

// Field is the rectangle of dots the ball plays inside. The edges are the
// inner boundaries one dot in from the outline.
type Field struct {
	Units []geom.Vec2

	Left, Top, Right, Bottom float64
}

// NewField lays out the outline dots: a full top and bottom wall and the
// side walls in between.
func NewField(cfg FieldConfig) Field {
	unit := geom.KindDot.Size()
	stepX := unit.X + cfg.Padding
	stepY := unit.Y + cfg.Padding
	x, y := cfg.Origin.X, cfg.Origin.Y
	w, h := cfg.Width, cfg.Height

	f := Field{
		Left:   x + unit.X,
		Top:    y + unit.Y,
		Right:  x + stepX*float64(w-1) - unit.X,
		Bottom: y + stepY*float64(h) - unit.Y,
	}

	for i := 0; i < w; i++ {
		f.Units = append(f.Units, geom.V(x+stepX*float64(i), y))
	}
	for i := 1; i < h; i++ {
		f.Units = append(f.Units,
			geom.V(x, y+stepY*float64(i)),
			geom.V(x+stepX*float64(w-1), y+stepY*float64(i)),
		)
	}
	for i := 0; i < w; i++ {
		f.Units = append(f.Units, geom.V(x+stepX*float64(i), y+stepY*float64(h)))
	}
	return f
}

// CenterX is the horizontal middle of the field, truncated to a whole pixel.
func (f Field) CenterX() float64 {
	return math.Trunc(f.Left + (f.Right-f.Left)/2)
}

// Bounds covers the playing area between the edges.
func (f Field) Bounds() cp.BB {
	return cp.BB{L: f.Left, B: f.Top, R: f.Right, T: f.Bottom}
}

// Extent covers every outline dot.
func (f Field) Extent() cp.BB {
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, u := range f.Units {
		bb = bb.Merge(geom.KindDot.ShapeAt(u).Bounds())
	}
	return bb
}

func (f Field) Edges() system.Edges {
	return system.Edges{Left: f.Left, Top: f.Top, Right: f.Right, Bottom: f.Bottom}
}

// BrickOrigin is where the brick layout starts.
func (f Field) BrickOrigin(offset geom.Vec2) geom.Vec2 {
	return geom.V(f.Left, f.Top).Add(offset)
}
