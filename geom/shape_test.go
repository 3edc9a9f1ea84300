package geom

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleProjection(t *testing.T) {
	c := NewCircle(V(10, 4), 2)

	min, max := c.Project(V(1, 0))
	assert.Equal(t, 8.0, min)
	assert.Equal(t, 12.0, max)

	min, max = c.Project(V(0, -1))
	assert.Equal(t, -6.0, min)
	assert.Equal(t, -2.0, max)

	assert.Empty(t, c.Axes())
	assert.Equal(t, cp.BB{L: 8, B: 2, R: 12, T: 6}, c.Bounds())
}

func TestPolygonDerivedNormals(t *testing.T) {
	p, err := NewPolygon(RectangleVertices(V(0, 0), 10, 4))
	require.NoError(t, err)

	axes := p.Axes()
	require.Len(t, axes, 4)
	for _, want := range []Vec2{{1, 0}, {0, -1}, {-1, 0}, {0, 1}} {
		found := false
		for _, n := range axes {
			if n.ApproxEqual(want, 1e-12) {
				found = true
			}
		}
		assert.True(t, found, "missing normal %v in %v", want, axes)
	}

	assert.Equal(t, V(5, 2), p.Center())
	assert.Equal(t, cp.BB{L: 0, B: 0, R: 10, T: 4}, p.Bounds())

	min, max := p.Project(V(1, 0))
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 10.0, max)
}

func TestPolygonExplicitNormalsAreNormalized(t *testing.T) {
	p, err := NewPolygon(ViewerVertices(V(0, 0)), V(0.5, 1), V(0, 3))
	require.NoError(t, err)

	require.Len(t, p.Axes(), 2)
	for _, n := range p.Axes() {
		assert.InDelta(t, 1.0, n.Len(), 1e-12)
	}
}

func TestPolygonErrors(t *testing.T) {
	_, err := NewPolygon(nil)
	assert.ErrorIs(t, err, ErrEmptyShape)

	_, err = NewPolygon(RectangleVertices(V(0, 0), 1, 1), V(0, 0))
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestNodeKinds(t *testing.T) {
	cases := []struct {
		kind   NodeKind
		name   string
		size   Vec2
		center Vec2
		axes   int
	}{
		{KindDot, "dot", V(12, 12), V(16, 26), 0},
		{KindRectangle, "rectangle", V(79, 17), V(49.5, 28.5), 4},
		{KindViewer, "viewer", V(83, 17), V(51.5, 28.5), 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos := V(10, 20)
			assert.Equal(t, c.name, c.kind.String())
			assert.Equal(t, c.size, c.kind.Size())
			assert.Equal(t, c.center, c.kind.CenterAt(pos))

			shape := c.kind.ShapeAt(pos)
			assert.True(t, shape.Center().ApproxEqual(c.center, 1e-12))
			assert.Len(t, shape.Axes(), c.axes)

			parsed, err := ParseNodeKind(c.name)
			require.NoError(t, err)
			assert.Equal(t, c.kind, parsed)
		})
	}

	_, err := ParseNodeKind("backdrop")
	assert.Error(t, err)
}

func TestShapeFollowsLivePosition(t *testing.T) {
	a := KindRectangle.ShapeAt(V(0, 0))
	b := KindRectangle.ShapeAt(V(5, 5))

	minA, _ := a.Project(V(1, 0))
	minB, _ := b.Project(V(1, 0))
	assert.Equal(t, 5.0, minB-minA)
}
