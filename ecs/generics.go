package ecs

import "github.com/milk9111/slimeboss/ecs/component"

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).set(e.id(), value)
	return nil
}

// Get returns e's component of the given kind.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e.id()).(*T)
	return v, ok
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove detaches e's component of the given kind.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !Has(w, e, kind) {
		return false
	}
	w.store(kind.ID(), false).remove(e.id())
	return true
}

// First returns the first live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	var found Entity
	var value *T
	ForEach(w, kind, func(e Entity, v *T) {
		if value == nil {
			found, value = e, v
		}
	})
	return found, value, value != nil
}

// ForEach visits every live entity carrying kind. The callback may add or
// destroy entities; those changes are seen on the next query.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return
	}
	for _, id := range s.ids() {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		if v, ok := s.get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// ForEach3 visits entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		c, ok := Get(w, e, kc)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}

// ForEach4 visits entities carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		d, ok := Get(w, e, kd)
		if !ok {
			return
		}
		fn(e, a, b, c, d)
	})
}
