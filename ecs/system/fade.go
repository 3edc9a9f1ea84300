package system

import (
	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/ecs/component"
)

// FadeSystem advances ghost tweens one tick at a time and removes ghosts once
// they are fully transparent.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem {
	return &FadeSystem{}
}

func (f *FadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.FadeComponent.Kind(), component.AppearanceComponent.Kind(),
		func(e ecs.Entity, fade *component.Fade, look *component.Appearance) {
			if fade.Tween == nil {
				_ = w.DestroyEntity(e)
				return
			}
			alpha, done := fade.Tween.Update(1)
			look.Alpha = alpha
			if done {
				_ = w.DestroyEntity(e)
			}
		})
}
