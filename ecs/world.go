package ecs

import "github.com/milk9111/glade/ecs/component"

// World owns entities, component stores, the name index, and the event queue.
// All access is single-threaded; the scheduler hands each system exclusive
// sequenced access per tick.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	names    map[string]Entity
	rnames   map[Entity]string
	events   EventQueue
	dt       float64
}

func NewWorld() *World {
	return &World{
		stores: make(map[component.ID]*sparseSet),
		names:  make(map[string]Entity),
		rnames: make(map[Entity]string),
	}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills the entity and drops all of its components and its name.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(int(e.id()))
	}
	if name, ok := w.rnames[e]; ok {
		delete(w.rnames, e)
		if w.names[name] == e {
			delete(w.names, name)
		}
	}
	return true
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// SetName registers a unique name for an entity. A later registration of the
// same name wins; the previous holder becomes unnamed.
func (w *World) SetName(e Entity, name string) {
	if name == "" || !w.IsAlive(e) {
		return
	}
	if prev, ok := w.names[name]; ok {
		delete(w.rnames, prev)
	}
	if old, ok := w.rnames[e]; ok {
		delete(w.names, old)
	}
	w.names[name] = e
	w.rnames[e] = name
}

func (w *World) Name(e Entity) string {
	return w.rnames[e]
}

// Lookup resolves a name to a live entity.
func (w *World) Lookup(name string) (Entity, bool) {
	e, ok := w.names[name]
	if !ok || !w.IsAlive(e) {
		return 0, false
	}
	return e, true
}

func (w *World) Events() *EventQueue {
	return &w.events
}

// SetDelta records the frame delta time for the current tick, in seconds.
func (w *World) SetDelta(dt float64) {
	w.dt = dt
}

func (w *World) Delta() float64 {
	return w.dt
}

func (w *World) store(id component.ID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfExists(id component.ID) *sparseSet {
	return w.stores[id]
}
