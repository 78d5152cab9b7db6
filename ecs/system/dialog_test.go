package system

import (
	"strings"
	"testing"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

func addDialogTarget(t *testing.T, w *ecs.World, id string, x, y, radius float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	tr := component.NewTransform(x, y)
	if err := ecs.Add(w, e, component.TransformKind, &tr); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.DialogTargetKind, &component.DialogTarget{DialogID: id, Radius: radius}); err != nil {
		t.Fatalf("add dialog target: %v", err)
	}
	return e
}

func pressInteract(t *testing.T, w *ecs.World, p ecs.Entity, pressed bool) {
	t.Helper()
	in, ok := ecs.Get(w, p, component.InputKind)
	if !ok {
		t.Fatalf("player has no input")
	}
	in.InteractPressed = pressed
}

func TestDialogOpensAdvancesAndCloses(t *testing.T) {
	w := ecs.NewWorld()
	p := addPlayerAt(t, w, 0)
	addDialogTarget(t, w, "follower", 10, 0, 80)

	d := NewDialogSystem()

	// in range but no press: nothing happens
	d.Update(w)
	if d.Line() != "" {
		t.Fatalf("dialog opened without interaction: %q", d.Line())
	}

	pressInteract(t, w, p, true)
	d.Update(w)
	first := d.Line()
	if first == "" {
		t.Fatalf("interaction in range should open the dialog")
	}

	d.Update(w)
	second := d.Line()
	if second == "" || second == first {
		t.Fatalf("second interaction should advance the page: %q -> %q", first, second)
	}

	d.Update(w)
	third := d.Line()
	if third == "" || third == second {
		t.Fatalf("third interaction should advance the page: %q -> %q", second, third)
	}

	// the last page reported has_next = false, so the next press closes
	d.Update(w)
	if d.Line() != "" {
		t.Fatalf("dialog should close after the last page, got %q", d.Line())
	}
}

func TestDialogIgnoredOutOfRange(t *testing.T) {
	w := ecs.NewWorld()
	p := addPlayerAt(t, w, 0)
	addDialogTarget(t, w, "follower", 500, 0, 80)

	d := NewDialogSystem()
	pressInteract(t, w, p, true)
	d.Update(w)

	if d.Line() != "" {
		t.Fatalf("interaction out of range opened a dialog: %q", d.Line())
	}
}

func TestDialogClosesWhenPlayerWalksAway(t *testing.T) {
	w := ecs.NewWorld()
	p := addPlayerAt(t, w, 0)
	addDialogTarget(t, w, "follower", 10, 0, 80)

	d := NewDialogSystem()
	pressInteract(t, w, p, true)
	d.Update(w)
	if d.Line() == "" {
		t.Fatalf("dialog should be open")
	}

	ptr, _ := ecs.Get(w, p, component.TransformKind)
	ptr.X = 1000
	pressInteract(t, w, p, false)
	d.Update(w)

	if d.Line() != "" {
		t.Fatalf("dialog should close when the player leaves, got %q", d.Line())
	}
}

func TestDialogUnknownScript(t *testing.T) {
	w := ecs.NewWorld()
	p := addPlayerAt(t, w, 0)
	addDialogTarget(t, w, "missing-script", 10, 0, 80)

	d := NewDialogSystem()
	pressInteract(t, w, p, true)
	d.Update(w)

	if d.Line() != "" {
		t.Fatalf("missing script must not open a dialog, got %q", d.Line())
	}
}

func TestDialogScriptText(t *testing.T) {
	w := ecs.NewWorld()
	p := addPlayerAt(t, w, 0)
	addDialogTarget(t, w, "follower", 10, 0, 80)

	d := NewDialogSystem()
	pressInteract(t, w, p, true)
	d.Update(w)

	if !strings.Contains(d.Line(), "hello") {
		t.Fatalf("first page = %q", d.Line())
	}
}
