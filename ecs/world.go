package ecs

import (
	"fmt"

	"github.com/milk9111/nodebreak/ecs/component"
)

// World owns entities, their components and the event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

// DestroyEntity removes e and all of its components. Destroying a handle that
// is stale or already destroyed reports component.ErrEntityNotAlive.
func DestroyEntity(w *World, e Entity) error {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

func (w *World) DestroyEntity(e Entity) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("destroy %s: %w", e, component.ErrEntityNotAlive)
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	w.entities.destroy(e)
	return nil
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
