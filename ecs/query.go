package ecs

import "github.com/milk9111/nodebreak/ecs/component"

// ForEach calls fn for every live entity holding kind. fn may destroy the
// entity it is handed; iteration runs over a snapshot of the entity list.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	set := storeFor(w, kind)
	if set == nil {
		return
	}
	for _, e := range set.Entities() {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both kinds, iterating the smaller store.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, ka), storeFor(w, kb)
	if sa == nil || sb == nil {
		return
	}
	ents := sa.Entities()
	if sb.len() < sa.len() {
		ents = sb.Entities()
	}
	for _, e := range ents {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}

// First returns the first live entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	set := storeFor(w, kind)
	if set == nil {
		return 0, nil, false
	}
	for _, e := range set.denseEntities {
		if w.IsAlive(e) {
			return e, set.denseValues[set.sparse[e.id()-1]], true
		}
	}
	return 0, nil, false
}

// Count returns how many entities hold kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return storeFor(w, kind).len()
}
