package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slab is a shape with a fixed extent along a single axis, independent of
// where that axis is sampled.
type slab struct {
	center   Vec2
	axis     Vec2
	min, max float64
}

func (s slab) Project(Vec2) (float64, float64) { return s.min, s.max }
func (s slab) Axes() []Vec2                    { return []Vec2{s.axis} }
func (s slab) Center() Vec2                    { return s.center }
func (s slab) Bounds() cp.BB                   { return cp.BB{} }

func TestCollideDistanceThreshold(t *testing.T) {
	near := slab{center: V(0, 0), axis: V(1, 0), min: -50, max: 50}

	cases := []struct {
		name        string
		other       Vec2
		maxDistance float64
		hit         bool
	}{
		{"beyond_threshold", V(51, 0), 50, false},
		{"at_threshold", V(50, 0), 50, true},
		{"small_threshold", V(5, 0), 4, false},
		{"diagonal_inside", V(30, 40), 50, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			far := slab{center: c.other, axis: V(1, 0), min: -50, max: 50}
			_, ok := Collide(near, far, c.maxDistance)
			assert.Equal(t, c.hit, ok)
		})
	}
}

func TestCollideDotAgainstViewer(t *testing.T) {
	viewer := KindViewer.ShapeAt(V(14, 0))
	s5 := 1 / math.Sqrt(5)

	cases := []struct {
		name string
		dot  Vec2
		hit  bool
		want Vec2
	}{
		{"left_above", V(0, -1), false, Vec2{}},
		{"left_top_edge", V(0, 0), true, V(-s5, -2*s5)},
		{"left_upper", V(0, 2), true, V(-s5, -2*s5)},
		{"left_lower", V(0, 3), true, V(-s5, 2*s5)},
		{"left_bottom_edge", V(0, 5), true, V(-s5, 2*s5)},
		{"left_below", V(0, 6), false, Vec2{}},
		{"right_above", V(99, -1), false, Vec2{}},
		{"right_upper", V(99, 1), true, V(s5, -2*s5)},
		{"right_lower", V(99, 4), true, V(s5, 2*s5)},
		{"right_below", V(99, 6), false, Vec2{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dot := KindDot.ShapeAt(c.dot)

			got, ok := Collide(dot, viewer, DefaultMaxDistance)
			require.Equal(t, c.hit, ok)
			if !c.hit {
				return
			}
			assert.InDelta(t, c.want.X, got.X, 1e-9)
			assert.InDelta(t, c.want.Y, got.Y, 1e-9)

			back, ok := Collide(viewer, dot, DefaultMaxDistance)
			require.True(t, ok)
			assert.InDelta(t, -c.want.X, back.X, 1e-9)
			assert.InDelta(t, -c.want.Y, back.Y, 1e-9)
		})
	}
}

func TestCollideDotAgainstViewerCulled(t *testing.T) {
	_, ok := Collide(KindDot.ShapeAt(V(0, 0)), KindViewer.ShapeAt(V(14, 0)), 40)
	assert.False(t, ok)
}

func TestCollideCircles(t *testing.T) {
	a := NewCircle(V(0, 0), 3)
	b := NewCircle(V(4, 3), 3)

	_, ok := Collide(a, b, 4)
	assert.False(t, ok, "centers 5 apart must be culled at 4")

	n, ok := Collide(a, b, DefaultMaxDistance)
	require.True(t, ok)
	assert.InDelta(t, -0.8, n.X, 1e-12)
	assert.InDelta(t, -0.6, n.Y, 1e-12)

	_, ok = Collide(a, NewCircle(V(7, 0), 3), DefaultMaxDistance)
	assert.False(t, ok)
}

func TestCollideCoincidentCircles(t *testing.T) {
	a := NewCircle(V(10, 10), 2)
	b := NewCircle(V(10, 10), 5)

	n, ok := Collide(a, b, DefaultMaxDistance)
	require.True(t, ok)
	assert.Equal(t, DefaultAxis, n)
	assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y))

	back, ok := Collide(b, a, DefaultMaxDistance)
	require.True(t, ok)
	assert.Equal(t, DefaultAxis, back)
}

func TestCollideTieBreakIsDeterministic(t *testing.T) {
	square := mustPolygon(RectangleVertices(V(0, 0), 10, 10))
	ball := NewCircle(V(12, 12), 3)

	n, ok := Collide(ball, square, DefaultMaxDistance)
	require.True(t, ok)
	assert.Equal(t, V(0, 1), n)

	back, ok := Collide(square, ball, DefaultMaxDistance)
	require.True(t, ok)
	assert.Equal(t, V(0, -1), back)
}

// When the shallowest axis is perpendicular to the centre line there is no
// side to push away from, so both argument orders report the canonical axis.
func TestCollidePerpendicularAxisKeepsCanonicalSign(t *testing.T) {
	square := mustPolygon(RectangleVertices(V(0, 0), 10, 10))
	plank := mustPolygon(RectangleVertices(V(-20, 3), 44, 4))

	contact, ok := NewResolver().Contact(square, plank)
	require.True(t, ok)
	assert.Equal(t, V(0, 1), contact.Normal)
	assert.InDelta(t, 7.0, contact.Depth, 1e-12)
	assert.Zero(t, contact.Normal.Dot(plank.Center().Sub(square.Center())))

	back, ok := Collide(plank, square, DefaultMaxDistance)
	require.True(t, ok)
	assert.Equal(t, V(0, 1), back)
}

func TestCollideRectanglesMatchBoundingBoxes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	wide := Resolver{MaxDistance: 1e9}

	for i := 0; i < 500; i++ {
		pa := V(rng.Float64()*100, rng.Float64()*100)
		pb := V(rng.Float64()*100, rng.Float64()*100)
		a := mustPolygon(RectangleVertices(pa, 5+rng.Float64()*40, 5+rng.Float64()*40))
		b := mustPolygon(RectangleVertices(pb, 5+rng.Float64()*40, 5+rng.Float64()*40))

		want := a.Bounds().Intersects(b.Bounds())
		got, ok := wide.Collide(a, b)
		require.Equal(t, want, ok, "pair %d: %v vs %v", i, a.Bounds(), b.Bounds())
		if !ok {
			continue
		}

		back, ok := wide.Collide(b, a)
		require.True(t, ok)
		assert.Equal(t, got.Neg(), back, "pair %d is not antisymmetric", i)

		delta := b.Center().Sub(a.Center())
		assert.LessOrEqual(t, got.Dot(delta), 0.0, "pair %d points into b", i)
		assert.InDelta(t, 1.0, got.Len(), 1e-12)
	}
}

func TestCollideAxisAligned(t *testing.T) {
	r := Resolver{MaxDistance: DefaultMaxDistance, Policy: PolicyAxisAligned}
	brick := KindRectangle.ShapeAt(V(100, 100))

	cases := []struct {
		name  string
		dot   Vec2
		hit   bool
		want  Vec2
		depth float64
	}{
		{"from_above", V(120, 90), true, V(0, -1), 1.5},
		{"from_below", V(150, 115), true, V(0, 1), 1.5},
		{"from_left", V(90, 105), true, V(-1, 0), 1.5},
		{"from_right", V(176, 103), true, V(1, 0), 2.5},
		{"apart", V(120, 70), false, Vec2{}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			contact, ok := r.Contact(KindDot.ShapeAt(c.dot), brick)
			require.Equal(t, c.hit, ok)
			if !ok {
				return
			}
			assert.Equal(t, c.want, contact.Normal)
			assert.InDelta(t, c.depth, contact.Depth, 1e-12)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in   string
		want Policy
	}{
		{"", PolicyMinimumOverlap},
		{"minimum-overlap", PolicyMinimumOverlap},
		{"SAT", PolicyMinimumOverlap},
		{"axis-aligned", PolicyAxisAligned},
		{" aabb ", PolicyAxisAligned},
	}
	for _, c := range cases {
		got, err := ParsePolicy(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got)
		assert.NotEmpty(t, got.String())
	}

	_, err := ParsePolicy("nearest")
	assert.Error(t, err)
}
