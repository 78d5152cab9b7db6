package ecs

import "github.com/milk9111/glade/ecs/component"

// Add attaches a component to a live entity. Components are stored by
// pointer so systems mutate them in place.
func Add[T any](w *World, e Entity, k component.Kind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID()).set(int(e.id()), v)
	return nil
}

func Get[T any](w *World, e Entity, k component.Kind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := w.storeIfExists(k.ID())
	if s == nil {
		return nil, false
	}
	v, ok := s.get(int(e.id())).(*T)
	return v, ok
}

func Has[T any](w *World, e Entity, k component.Kind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

func Remove[T any](w *World, e Entity, k component.Kind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := w.storeIfExists(k.ID())
	if s == nil {
		return false
	}
	return s.remove(int(e.id()))
}

// ForEach visits every live entity holding the component. Adding or removing
// the visited component inside fn is not supported.
func ForEach[T any](w *World, k component.Kind[T], fn func(Entity, *T)) {
	s := w.storeIfExists(k.ID())
	if s == nil {
		return
	}
	for i, id := range s.denseEntities {
		e, ok := w.entities.at(id)
		if !ok {
			continue
		}
		if v, ok := s.denseValues[i].(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both components, iterating the smaller
// store.
func ForEach2[A, B any](w *World, ka component.Kind[A], kb component.Kind[B], fn func(Entity, *A, *B)) {
	sa, sb := w.storeIfExists(ka.ID()), w.storeIfExists(kb.ID())
	if sa == nil || sb == nil {
		return
	}
	if sa.len() <= sb.len() {
		ForEach(w, ka, func(e Entity, a *A) {
			if b, ok := Get(w, e, kb); ok {
				fn(e, a, b)
			}
		})
		return
	}
	ForEach(w, kb, func(e Entity, b *B) {
		if a, ok := Get(w, e, ka); ok {
			fn(e, a, b)
		}
	})
}

func ForEach3[A, B, C any](w *World, ka component.Kind[A], kb component.Kind[B], kc component.Kind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.Kind[A], kb component.Kind[B], kc component.Kind[C], kd component.Kind[D], fn func(Entity, *A, *B, *C, *D)) {
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		if d, ok := Get(w, e, kd); ok {
			fn(e, a, b, c, d)
		}
	})
}
