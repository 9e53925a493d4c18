package ecs

import "github.com/icmeyer/boing/ecs/component"

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	return w.AddComponent(e, handle.Kind(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// ForEach calls fn for every entity carrying handle's component and stores
// back whatever fn leaves in the value.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.Kind().ID(), false)
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		v, ok := s.Get(e).(T)
		if !ok {
			continue
		}
		fn(e, &v)
		if w.IsAlive(e) {
			s.Set(e, v)
		}
	}
}
