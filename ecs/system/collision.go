package system

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/ecs/component"
	"github.com/milk9111/nodebreak/geom"
)

const paddleFlashTicks = 6

// Edges are the inner boundaries of the playing field.
type Edges struct {
	Left, Top, Right, Bottom float64
}

// CollisionSystem resolves the ball against the field edges, every live brick
// and the paddle, in that order. Bricks that are hit are destroyed. The ball
// motion is reflected at most once per distinct contact normal per tick, and
// only when the ball is moving into the surface.
type CollisionSystem struct {
	Edges    Edges
	Resolver geom.Resolver
	// GhostTicks is how long a destroyed brick keeps fading on screen. Zero
	// disables ghosts.
	GhostTicks float32

	logger *zap.Logger
}

func NewCollisionSystem(edges Edges, resolver geom.Resolver, logger *zap.Logger) *CollisionSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollisionSystem{Edges: edges, Resolver: resolver, logger: logger}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}

	ballEnt, _, ok := ecs.First(w, component.BallTagComponent.Kind())
	if !ok {
		return
	}
	bt, okT := ecs.Get(w, ballEnt, component.TransformComponent.Kind())
	bc, okC := ecs.Get(w, ballEnt, component.ColliderComponent.Kind())
	bm, okM := ecs.Get(w, ballEnt, component.MotionComponent.Kind())
	if !okT || !okC || !okM {
		return
	}

	if c.checkEdges(w, bc.Kind.CenterAt(bt.Pos), bm) {
		return
	}

	ball := bc.Shape(*bt)
	var applied []geom.Vec2

	ecs.ForEach3(w, component.BrickComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, brick *component.Brick, t *component.Transform, col *component.Collider) {
			n, hit := c.Resolver.Collide(ball, col.Shape(*t))
			if !hit {
				return
			}
			look, _ := ecs.Get(w, e, component.AppearanceComponent.Kind())
			label := brick.Label
			if err := w.DestroyEntity(e); err != nil {
				c.logger.Warn("brick already destroyed", zap.String("brick", label), zap.Error(err))
				return
			}
			c.spawnGhost(w, look, *t, *col)
			applied = bounce(bm, n, applied)
			w.Events().Push(ecs.Event{
				Type: ecs.EventBrickDestroyed,
				Data: ecs.BrickDestroyed{Brick: e, Label: label, Normal: n},
			})
			c.logger.Debug("brick destroyed", zap.String("brick", label), zap.Stringer("normal", n))
		})

	ecs.ForEach3(w, component.PaddleComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, _ *component.Paddle, t *component.Transform, col *component.Collider) {
			n, hit := c.Resolver.Collide(ball, col.Shape(*t))
			if !hit {
				return
			}
			if bm.Delta.Dot(n) < 0 {
				_ = ecs.Add(w, e, component.WhiteFlashComponent.Kind(), component.NewWhiteFlash(paddleFlashTicks, 2))
			}
			applied = bounce(bm, n, applied)
			w.Events().Push(ecs.Event{Type: ecs.EventPaddleHit, Data: ecs.Bounce{Normal: n}})
		})
}

// checkEdges inverts one motion axis per crossed side edge and reports whether
// the ball fell through the bottom.
func (c *CollisionSystem) checkEdges(w *ecs.World, center geom.Vec2, m *component.Motion) bool {
	if (center.X < c.Edges.Left && m.Delta.X < 0) || (center.X > c.Edges.Right && m.Delta.X > 0) {
		m.Delta.X = -m.Delta.X
		w.Events().Push(ecs.Event{Type: ecs.EventWallBounce, Data: ecs.Bounce{Normal: geom.V(sign(m.Delta.X), 0)}})
	}
	if center.Y < c.Edges.Top && m.Delta.Y < 0 {
		m.Delta.Y = -m.Delta.Y
		w.Events().Push(ecs.Event{Type: ecs.EventWallBounce, Data: ecs.Bounce{Normal: geom.V(0, 1)}})
	}
	if center.Y > c.Edges.Bottom {
		w.Events().Push(ecs.Event{Type: ecs.EventBallLost})
		return true
	}
	return false
}

func (c *CollisionSystem) spawnGhost(w *ecs.World, look *component.Appearance, t component.Transform, col component.Collider) {
	if c.GhostTicks <= 0 || look == nil {
		return
	}
	ghost := w.CreateEntity()
	faded := *look
	faded.Label = ""
	faded.Alpha = 1
	_ = ecs.Add(w, ghost, component.TransformComponent.Kind(), &t)
	_ = ecs.Add(w, ghost, component.ColliderComponent.Kind(), &col)
	_ = ecs.Add(w, ghost, component.AppearanceComponent.Kind(), &faded)
	_ = ecs.Add(w, ghost, component.FadeComponent.Kind(), &component.Fade{
		Tween: gween.New(1, 0, c.GhostTicks, ease.OutQuad),
	})
}

// bounce reflects the motion about n unless a parallel normal was already
// applied this tick or the ball is already leaving the surface.
func bounce(m *component.Motion, n geom.Vec2, applied []geom.Vec2) []geom.Vec2 {
	for _, prev := range applied {
		if prev.ApproxEqual(n, 1e-9) {
			return applied
		}
	}
	if m.Delta.Dot(n) >= 0 {
		return applied
	}
	m.Delta = geom.Reflect(m.Delta, n)
	return append(applied, n)
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
