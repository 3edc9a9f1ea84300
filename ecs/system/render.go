package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/ecs/component"
	"github.com/milk9111/nodebreak/geom"
)

// RenderSystem draws every node that has a position, a collider and an
// appearance. It only reads the world.
type RenderSystem struct {
	// Debug outlines the collision shapes and the last contact normals.
	Debug bool

	normals []geom.Vec2
	origin  geom.Vec2
}

func NewRenderSystem(origin geom.Vec2) *RenderSystem {
	return &RenderSystem{origin: origin}
}

// Observe records contact normals from a tick's events for the debug overlay.
func (r *RenderSystem) Observe(events []ecs.Event) {
	if r == nil || !r.Debug {
		return
	}
	for _, evt := range events {
		switch data := evt.Data.(type) {
		case ecs.BrickDestroyed:
			r.normals = append(r.normals, data.Normal)
		case ecs.Bounce:
			r.normals = append(r.normals, data.Normal)
		}
	}
	if n := len(r.normals); n > 8 {
		r.normals = r.normals[n-8:]
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	type node struct {
		e    ecs.Entity
		t    component.Transform
		c    component.Collider
		look component.Appearance
		fade bool
	}
	var nodes []node
	ecs.ForEach3(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), component.AppearanceComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, c *component.Collider, look *component.Appearance) {
			fading := ecs.Has(w, e, component.FadeComponent.Kind())
			n := node{e: e, t: *t, c: *c, look: *look, fade: fading}
			if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok && wf.On {
				n.look.Color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: n.look.Color.A}
			}
			nodes = append(nodes, n)
		})
	sort.SliceStable(nodes, func(i, j int) bool {
		return uint64(nodes[i].e) < uint64(nodes[j].e)
	})

	for _, n := range nodes {
		clr := n.look.Color
		if n.fade {
			clr.A = uint8(float32(clr.A) * clamp01(n.look.Alpha))
		}
		pos := n.t.Pos.Add(r.origin)
		r.drawNode(screen, n.c.Kind, pos, clr)
		if n.look.Label != "" && n.c.Kind != geom.KindDot {
			ebitenutil.DebugPrintAt(screen, n.look.Class, int(pos.X)+4, int(pos.Y)+1)
		}
		if r.Debug {
			r.drawShape(screen, n.c.Shape(component.Transform{Pos: pos}))
		}
	}

	if r.Debug {
		r.drawNormals(w, screen)
	}
}

func (r *RenderSystem) drawNode(screen *ebiten.Image, kind geom.NodeKind, pos geom.Vec2, clr color.RGBA) {
	size := kind.Size()
	switch kind {
	case geom.KindDot:
		center := kind.CenterAt(pos)
		vector.FillCircle(screen, float32(center.X), float32(center.Y), geom.DotRadius, clr, true)
	case geom.KindRectangle:
		vector.FillRect(screen, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), clr, false)
		vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), 1, color.RGBA{A: clr.A}, false)
	case geom.KindViewer:
		vertices := geom.ViewerVertices(pos)
		inset := float32(geom.ViewerBevel / 2)
		vector.FillRect(screen, float32(pos.X)+inset, float32(pos.Y), float32(size.X)-2*inset, float32(size.Y), clr, false)
		strokePolygon(screen, vertices, clr)
	}
}

func (r *RenderSystem) drawShape(screen *ebiten.Image, shape geom.Shape) {
	debug := color.RGBA{R: 255, G: 64, B: 64, A: 200}
	switch s := shape.(type) {
	case geom.Circle:
		vector.StrokeCircle(screen, float32(s.C.X), float32(s.C.Y), float32(s.R), 1, debug, true)
	case *geom.Polygon:
		strokePolygon(screen, s.Vertices(), debug)
	}
}

func (r *RenderSystem) drawNormals(w *ecs.World, screen *ebiten.Image) {
	ballEnt, _, ok := ecs.First(w, component.BallTagComponent.Kind())
	if !ok {
		return
	}
	t, okT := ecs.Get(w, ballEnt, component.TransformComponent.Kind())
	c, okC := ecs.Get(w, ballEnt, component.ColliderComponent.Kind())
	if !okT || !okC {
		return
	}
	center := c.Kind.CenterAt(t.Pos.Add(r.origin))
	for _, n := range r.normals {
		end := center.Add(n.Scale(20))
		vector.StrokeLine(screen, float32(center.X), float32(center.Y), float32(end.X), float32(end.Y), 1, color.RGBA{R: 255, A: 255}, true)
	}
}

func strokePolygon(screen *ebiten.Image, vertices []geom.Vec2, clr color.RGBA) {
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, true)
	}
}

func clamp01(f float32) float32 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
