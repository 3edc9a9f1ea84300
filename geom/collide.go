package geom

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Policy selects how the push vector of a confirmed collision is chosen.
type Policy uint8

const (
	// PolicyMinimumOverlap pushes along the candidate axis of least
	// penetration. Works for any convex shape.
	PolicyMinimumOverlap Policy = iota
	// PolicyAxisAligned compares bounding-box penetration on X and Y only and
	// returns (±1,0) or (0,±1). Only meaningful for rectangles.
	PolicyAxisAligned
)

// DefaultMaxDistance is the broad-phase cull threshold between centers.
const DefaultMaxDistance = 80

// DefaultAxis is substituted when two circle centers coincide.
var DefaultAxis = Vec2{0, -1}

func (p Policy) String() string {
	switch p {
	case PolicyMinimumOverlap:
		return "minimum-overlap"
	case PolicyAxisAligned:
		return "axis-aligned"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "minimum-overlap", "sat":
		return PolicyMinimumOverlap, nil
	case "axis-aligned", "aabb":
		return PolicyAxisAligned, nil
	default:
		return 0, fmt.Errorf("geom: unknown collision policy %q", s)
	}
}

// Contact describes a confirmed collision. Normal is a unit vector pointing
// away from the second shape, Depth the penetration along it.
type Contact struct {
	Normal Vec2
	Depth  float64
}

// Resolver runs the separating axis test between pairs of shapes.
type Resolver struct {
	MaxDistance float64
	Policy      Policy
}

func NewResolver() Resolver {
	return Resolver{MaxDistance: DefaultMaxDistance}
}

// Collide reports the unit push vector for a against b, or false when the
// shapes do not overlap or their centers are farther apart than maxDistance.
func Collide(a, b Shape, maxDistance float64) (Vec2, bool) {
	return Resolver{MaxDistance: maxDistance}.Collide(a, b)
}

func (r Resolver) Collide(a, b Shape) (Vec2, bool) {
	c, ok := r.Contact(a, b)
	return c.Normal, ok
}

// Contact runs the test and returns the full contact description.
func (r Resolver) Contact(a, b Shape) (Contact, bool) {
	delta := b.Center().Sub(a.Center())
	if delta.Len() > r.MaxDistance {
		return Contact{}, false
	}

	if r.Policy == PolicyAxisAligned {
		return axisAlignedContact(a, b, delta)
	}

	var best Contact
	found := false
	for _, n := range candidateAxes(a, b, delta) {
		minA, maxA := a.Project(n)
		minB, maxB := b.Project(n)
		if maxA < minB || maxB < minA {
			return Contact{}, false
		}
		depth := math.Min(maxB-minA, maxA-minB)
		if !found || depth < best.Depth {
			best = Contact{Normal: n, Depth: depth}
			found = true
		}
	}
	if !found {
		return Contact{}, false
	}

	if delta.Dot(best.Normal) > 0 {
		best.Normal = best.Normal.Neg()
	}
	return best, true
}

// candidateAxes merges the axes of both shapes in a canonical order so the
// outcome does not depend on which shape is passed first. Axes are flipped
// into the +X half plane (+Y when vertical), parallel duplicates are dropped
// and the rest sorted by X then Y. Ties at minimum depth resolve to the first
// axis in that order.
func candidateAxes(a, b Shape, delta Vec2) []Vec2 {
	src := make([]Vec2, 0, len(a.Axes())+len(b.Axes()))
	src = append(src, a.Axes()...)
	src = append(src, b.Axes()...)
	if len(src) == 0 {
		// circles only: the centre line is the one axis, kept uncanonicalised
		// so coincident centres report DefaultAxis as is
		return []Vec2{delta.NormalizeOr(DefaultAxis)}
	}

	axes := make([]Vec2, 0, len(src))
	for _, n := range src {
		n = canonicalAxis(n)
		if !slices.Contains(axes, n) {
			axes = append(axes, n)
		}
	}
	slices.SortFunc(axes, func(p, q Vec2) int {
		if c := cmpFloat(p.X, q.X); c != 0 {
			return c
		}
		return cmpFloat(p.Y, q.Y)
	})
	return axes
}

func canonicalAxis(n Vec2) Vec2 {
	if n.X < 0 || (n.X == 0 && n.Y < 0) {
		n = n.Neg()
	}
	// drop negative zeros so equal axes compare equal
	return Vec2{X: n.X + 0, Y: n.Y + 0}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func axisAlignedContact(a, b Shape, delta Vec2) (Contact, bool) {
	ba, bb := a.Bounds(), b.Bounds()
	if ba.R < bb.L || bb.R < ba.L || ba.T < bb.B || bb.T < ba.B {
		return Contact{}, false
	}

	overlapX := math.Min(bb.R-ba.L, ba.R-bb.L)
	overlapY := math.Min(bb.T-ba.B, ba.T-bb.B)

	c := Contact{Normal: Vec2{0, 1}, Depth: overlapY}
	if overlapX < overlapY {
		c = Contact{Normal: Vec2{1, 0}, Depth: overlapX}
	}
	if delta.Dot(c.Normal) > 0 {
		c.Normal = c.Normal.Neg()
	}
	return c, true
}
