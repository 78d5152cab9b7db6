package system

import (
	"testing"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

func addNamed(t *testing.T, w *ecs.World, name string, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	tr := component.NewTransform(x, y)
	if err := ecs.Add(w, e, component.TransformKind, &tr); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	w.SetName(e, name)
	return e
}

func TestParentingReparentByName(t *testing.T) {
	w := ecs.NewWorld()
	parent := addNamed(t, w, "parent", 100, 100)
	child := addNamed(t, w, "child", 130, 120)

	w.Events().Push(ecs.Event{Type: ecs.EventParentChange, Data: component.ParentChangeEvent{
		Name: "child", NewParent: "parent",
	}})
	NewParentingSystem().Update(w)

	par, ok := ecs.Get(w, child, component.ParentKind)
	if !ok {
		t.Fatalf("child should carry a parent link")
	}
	if ecs.Entity(par.Entity) != parent {
		t.Fatalf("parent link = %v, want %v", par.Entity, parent)
	}
	if par.OffsetX != 30 || par.OffsetY != 20 {
		t.Fatalf("offset = %v,%v, want 30,20", par.OffsetX, par.OffsetY)
	}
}

func TestParentingSyncFollowsParent(t *testing.T) {
	w := ecs.NewWorld()
	parent := addNamed(t, w, "parent", 100, 100)
	child := addNamed(t, w, "child", 130, 120)

	s := NewParentingSystem()
	w.Events().Push(ecs.Event{Type: ecs.EventParentChange, Data: component.ParentChangeEvent{
		Name: "child", NewParent: "parent",
	}})
	s.Update(w)

	ptr, _ := ecs.Get(w, parent, component.TransformKind)
	ptr.X = 500
	ptr.Y = 200
	s.Update(w)

	ctr, _ := ecs.Get(w, child, component.TransformKind)
	if ctr.X != 530 || ctr.Y != 220 {
		t.Fatalf("child at %v,%v, want 530,220", ctr.X, ctr.Y)
	}
}

func TestParentingRejectsSelf(t *testing.T) {
	w := ecs.NewWorld()
	e := addNamed(t, w, "solo", 0, 0)

	w.Events().Push(ecs.Event{Type: ecs.EventParentChange, Data: component.ParentChangeEvent{
		Name: "solo", NewParent: "solo",
	}})
	NewParentingSystem().Update(w)

	if ecs.Has(w, e, component.ParentKind) {
		t.Fatalf("entity must not become its own parent")
	}
}

func TestParentingUnknownNamesIgnored(t *testing.T) {
	w := ecs.NewWorld()
	e := addNamed(t, w, "child", 0, 0)

	w.Events().Push(ecs.Event{Type: ecs.EventParentChange, Data: component.ParentChangeEvent{
		Name: "child", NewParent: "ghost",
	}})
	NewParentingSystem().Update(w)

	if ecs.Has(w, e, component.ParentKind) {
		t.Fatalf("reparent to a missing entity should be dropped")
	}
}

func TestParentingDeadParentKeepsChildPosition(t *testing.T) {
	w := ecs.NewWorld()
	parent := addNamed(t, w, "parent", 100, 100)
	child := addNamed(t, w, "child", 130, 120)

	s := NewParentingSystem()
	w.Events().Push(ecs.Event{Type: ecs.EventParentChange, Data: component.ParentChangeEvent{
		Name: "child", NewParent: "parent",
	}})
	s.Update(w)

	w.DestroyEntity(parent)
	s.Update(w)

	ctr, _ := ecs.Get(w, child, component.TransformKind)
	if ctr.X != 130 || ctr.Y != 120 {
		t.Fatalf("orphan moved to %v,%v", ctr.X, ctr.Y)
	}
}
