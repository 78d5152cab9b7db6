package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

func addSceneObject(t *testing.T, w *ecs.World, obj component.GameObject, name string, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	tr := component.NewTransform(x, y)
	if err := ecs.Add(w, e, component.TransformKind, &tr); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.SceneObjectKind, &component.SceneObject{Object: obj}); err != nil {
		t.Fatalf("add scene object: %v", err)
	}
	if name != "" {
		w.SetName(e, name)
	}
	return e
}

func TestPersistenceSaveWritesScene(t *testing.T) {
	p := &PersistenceSystem{dir: t.TempDir()}
	w := ecs.NewWorld()
	addSceneObject(t, w, component.GameObjectBox, "crate", 48, 96)

	w.Events().Push(ecs.Event{Type: ecs.EventSave, Data: component.SaveRequest{Filename: "scene.yaml"}})
	p.Update(w)

	data, err := os.ReadFile(filepath.Join(p.dir, "scene.yaml"))
	if err != nil {
		t.Fatalf("save file missing: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("save file is empty")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	p := &PersistenceSystem{dir: t.TempDir()}
	w := ecs.NewWorld()
	addSceneObject(t, w, component.GameObjectBox, "crate", 48, 96)
	addSceneObject(t, w, component.GameObjectGrass, "lawn", 300, 6)

	w.Events().Push(ecs.Event{Type: ecs.EventSave, Data: component.SaveRequest{Filename: "scene.yaml"}})
	p.Update(w)

	w.Events().Push(ecs.Event{Type: ecs.EventLoad, Data: component.LoadRequest{Filename: "scene.yaml"}})
	p.Update(w)

	// the old scene is torn down and replaced with queued spawn events
	var survivors int
	ecs.ForEach(w, component.SceneObjectKind, func(ecs.Entity, *component.SceneObject) {
		survivors++
	})
	if survivors != 0 {
		t.Fatalf("%d stale scene objects survived the load", survivors)
	}

	spawns := w.Events().DrainType(ecs.EventSpawn)
	if len(spawns) != 2 {
		t.Fatalf("load queued %d spawns, want 2", len(spawns))
	}
	byName := map[string]component.SpawnEvent{}
	for _, raw := range spawns {
		ev, ok := raw.(component.SpawnEvent)
		if !ok {
			t.Fatalf("spawn payload %T", raw)
		}
		byName[ev.Name] = ev
	}
	crate, ok := byName["crate"]
	if !ok {
		t.Fatalf("crate not restored: %v", byName)
	}
	if crate.Object != component.GameObjectBox || crate.Transform.X != 48 || crate.Transform.Y != 96 {
		t.Fatalf("crate restored as %+v", crate)
	}
	if byName["lawn"].Object != component.GameObjectGrass {
		t.Fatalf("lawn restored as %+v", byName["lawn"])
	}
}

func TestPersistenceSavesParentLinks(t *testing.T) {
	p := &PersistenceSystem{dir: t.TempDir()}
	w := ecs.NewWorld()
	anchor := addSceneObject(t, w, component.GameObjectBox, "anchor", 0, 0)
	lamp := addSceneObject(t, w, component.GameObjectOrb, "lamp", 30, 40)
	if err := ecs.Add(w, lamp, component.ParentKind, &component.Parent{Entity: uint64(anchor), OffsetX: 30, OffsetY: 40}); err != nil {
		t.Fatalf("add parent: %v", err)
	}

	w.Events().Push(ecs.Event{Type: ecs.EventSave, Data: component.SaveRequest{Filename: "scene.yaml"}})
	p.Update(w)
	w.Events().Push(ecs.Event{Type: ecs.EventLoad, Data: component.LoadRequest{Filename: "scene.yaml"}})
	p.Update(w)

	w.Events().DrainType(ecs.EventSpawn)
	changes := w.Events().DrainType(ecs.EventParentChange)
	if len(changes) != 1 {
		t.Fatalf("load queued %d parent changes, want 1", len(changes))
	}
	ev := changes[0].(component.ParentChangeEvent)
	if ev.Name != "lamp" || ev.NewParent != "anchor" {
		t.Fatalf("parent change = %+v", ev)
	}
}

func TestPersistenceLoadMissingFile(t *testing.T) {
	p := &PersistenceSystem{dir: t.TempDir()}
	w := ecs.NewWorld()
	addSceneObject(t, w, component.GameObjectBox, "crate", 0, 0)

	w.Events().Push(ecs.Event{Type: ecs.EventLoad, Data: component.LoadRequest{Filename: "nope.yaml"}})
	p.Update(w)

	// failed load leaves the world untouched
	var survivors int
	ecs.ForEach(w, component.SceneObjectKind, func(ecs.Entity, *component.SceneObject) {
		survivors++
	})
	if survivors != 1 {
		t.Fatalf("failed load destroyed the scene, %d objects left", survivors)
	}
}
