package system

import (
	"testing"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

func addFollower(t *testing.T, w *ecs.World, x float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	tr := component.NewTransform(x, 0)
	if err := ecs.Add(w, e, component.TransformKind, &tr); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.InputKind, &component.Input{}); err != nil {
		t.Fatalf("add input: %v", err)
	}
	if err := ecs.Add(w, e, component.FollowerKind, &component.Follower{FollowRange: 600, StopDistance: 120}); err != nil {
		t.Fatalf("add follower: %v", err)
	}
	return e
}

func addPlayerAt(t *testing.T, w *ecs.World, x float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	tr := component.NewTransform(x, 0)
	if err := ecs.Add(w, e, component.TransformKind, &tr); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.PlayerKind, &component.Player{}); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := ecs.Add(w, e, component.InputKind, &component.Input{}); err != nil {
		t.Fatalf("add input: %v", err)
	}
	return e
}

func TestFollowerSystem(t *testing.T) {
	cases := []struct {
		name      string
		playerX   float64
		followerX float64
		want      float64
	}{
		{"chases_left", 0, 300, -1},
		{"chases_right", 900, 500, 1},
		{"stops_when_close", 0, 80, 0},
		{"ignores_far_player", 0, 1000, 0},
		{"boundary_of_range", 0, 599, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addPlayerAt(t, w, c.playerX)
			f := addFollower(t, w, c.followerX)

			NewFollowerSystem().Update(w)

			in, _ := ecs.Get(w, f, component.InputKind)
			if in.Movement.X != c.want {
				t.Fatalf("Movement.X = %v, want %v", in.Movement.X, c.want)
			}
		})
	}
}

func TestFollowerSystemStopsAfterPlayerLeaves(t *testing.T) {
	w := ecs.NewWorld()
	p := addPlayerAt(t, w, 0)
	f := addFollower(t, w, 300)

	s := NewFollowerSystem()
	s.Update(w)

	in, _ := ecs.Get(w, f, component.InputKind)
	if in.Movement.X != -1 {
		t.Fatalf("expected chase, got %v", in.Movement.X)
	}

	ptr, _ := ecs.Get(w, p, component.TransformKind)
	ptr.X = 2000
	s.Update(w)

	in, _ = ecs.Get(w, f, component.InputKind)
	if in.Movement.X != 0 {
		t.Fatalf("follower should stop when the player leaves range, got %v", in.Movement.X)
	}
}

func TestFollowerSystemNoPlayer(t *testing.T) {
	w := ecs.NewWorld()
	f := addFollower(t, w, 300)
	in, _ := ecs.Get(w, f, component.InputKind)
	in.Movement.X = 1

	NewFollowerSystem().Update(w)

	// nothing to chase, intent untouched
	in, _ = ecs.Get(w, f, component.InputKind)
	if in.Movement.X != 1 {
		t.Fatalf("Movement.X = %v", in.Movement.X)
	}
}
