package ecs

import "github.com/milk9111/nodebreak/geom"

// EventType identifies what happened during a tick.
type EventType string

const (
	EventBrickDestroyed EventType = "brick_destroyed"
	EventBallLost       EventType = "ball_lost"
	EventPaddleHit      EventType = "paddle_hit"
	EventWallBounce     EventType = "wall_bounce"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// BrickDestroyed is the payload of EventBrickDestroyed.
type BrickDestroyed struct {
	Brick  Entity
	Label  string
	Normal geom.Vec2
}

// Bounce is the payload of EventPaddleHit and EventWallBounce.
type Bounce struct {
	Normal geom.Vec2
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
