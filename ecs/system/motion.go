package system

import (
	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/ecs/component"
)

type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.MotionComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, motion *component.Motion) {
			t.Pos = t.Pos.Add(motion.Delta)
		})
}
