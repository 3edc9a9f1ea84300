package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/ecs/component"
)

// PaddleSystem pins the paddle to row Y and moves it horizontally toward its
// target, keeping the whole node inside [Left, Right].
type PaddleSystem struct {
	Left  float64
	Right float64
	Y     float64
}

func NewPaddleSystem(left, right, y float64) *PaddleSystem {
	return &PaddleSystem{Left: left, Right: right, Y: y}
}

func (p *PaddleSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.PaddleComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, paddle *component.Paddle, t *component.Transform, c *component.Collider) {
			t.Pos.Y = p.Y
			if !paddle.HasTarget {
				return
			}
			width := c.Kind.Size().X
			hi := p.Right - width
			if hi < p.Left {
				hi = p.Left
			}
			t.Pos.X = cp.Clamp(paddle.TargetX-width/2, p.Left, hi)
		})
}
