package system

import (
	"testing"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/ecs/entity"
	"github.com/milk9111/glade/prefabs"
)

func newSpawnSystem(t *testing.T) (*SpawnSystem, *prefabs.Library) {
	t.Helper()
	specs, err := prefabs.LoadLibrary()
	if err != nil {
		t.Fatalf("load prefabs: %v", err)
	}
	registry, err := entity.NewRegistry()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return NewSpawnSystem(registry, specs), specs
}

func countScene(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.SceneObjectKind, func(ecs.Entity, *component.SceneObject) {
		n++
	})
	return n
}

func TestSpawnSystemCreatesObjects(t *testing.T) {
	s, _ := newSpawnSystem(t)
	w := ecs.NewWorld()

	for _, obj := range component.AllGameObjects() {
		w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: component.SpawnEvent{
			Object:    obj,
			Transform: component.Transform{X: 100, Y: 50},
		}})
	}

	s.Update(w)

	if got := countScene(w); got != len(component.AllGameObjects()) {
		t.Fatalf("spawned %d scene objects, want %d", got, len(component.AllGameObjects()))
	}
	if w.Events().Len() != 0 {
		t.Fatalf("spawn events should be drained, %d left", w.Events().Len())
	}
}

func TestSpawnSystemRejectsUnknownTag(t *testing.T) {
	s, _ := newSpawnSystem(t)
	w := ecs.NewWorld()

	w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: component.SpawnEvent{
		Object: component.GameObject(99),
	}})

	s.Update(w)

	if got := countScene(w); got != 0 {
		t.Fatalf("unknown tag spawned %d objects", got)
	}
}

func TestSpawnSystemNamesAndParents(t *testing.T) {
	s, _ := newSpawnSystem(t)
	w := ecs.NewWorld()

	w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: component.SpawnEvent{
		Object:    component.GameObjectBox,
		Name:      "anchor",
		Transform: component.Transform{X: 0, Y: 0},
	}})
	s.Update(w)

	w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: component.SpawnEvent{
		Object:    component.GameObjectOrb,
		Name:      "lamp",
		Parent:    "anchor",
		Transform: component.Transform{X: 30, Y: 40},
	}})
	s.Update(w)

	lamp, ok := w.Lookup("lamp")
	if !ok {
		t.Fatalf("named spawn not registered")
	}
	par, ok := ecs.Get(w, lamp, component.ParentKind)
	if !ok {
		t.Fatalf("spawn with parent should carry a parent link")
	}
	anchor, _ := w.Lookup("anchor")
	if ecs.Entity(par.Entity) != anchor {
		t.Fatalf("parent link points at %v, want %v", par.Entity, anchor)
	}
}

func TestSpawnNpcBuildsHierarchy(t *testing.T) {
	s, specs := newSpawnSystem(t)
	w := ecs.NewWorld()

	w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: component.SpawnEvent{
		Object:    component.GameObjectNpc,
		Name:      "guide",
		Transform: component.Transform{X: 500, Y: 100},
	}})
	s.Update(w)

	root, ok := w.Lookup("guide")
	if !ok {
		t.Fatalf("npc root not spawned")
	}
	if !ecs.Has(w, root, component.FollowerKind) {
		t.Fatalf("npc should follow the player")
	}
	if !ecs.Has(w, root, component.CharacterControllerKind) {
		t.Fatalf("npc should have a character controller")
	}

	var dialogChildren, modelChildren int
	ecs.ForEach2(w, component.DialogTargetKind, component.ParentKind, func(e ecs.Entity, dt *component.DialogTarget, par *component.Parent) {
		if ecs.Entity(par.Entity) == root {
			dialogChildren++
			if dt.DialogID != specs.Npc.DialogID {
				t.Fatalf("dialog id = %q, want %q", dt.DialogID, specs.Npc.DialogID)
			}
		}
	})
	ecs.ForEach2(w, component.ModelKind, component.ParentKind, func(e ecs.Entity, _ *component.Model, par *component.Parent) {
		if ecs.Entity(par.Entity) == root {
			modelChildren++
		}
	})
	if dialogChildren != 1 || modelChildren != 1 {
		t.Fatalf("npc hierarchy: %d dialog children, %d model children", dialogChildren, modelChildren)
	}
}
