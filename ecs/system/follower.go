package system

import (
	"math"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

// FollowerSystem steers follower NPCs toward the player. A follower walks
// only while the player is inside its follow range and farther away than
// its stop distance, so it trails without crowding.
type FollowerSystem struct{}

func NewFollowerSystem() *FollowerSystem {
	return &FollowerSystem{}
}

func (f *FollowerSystem) Update(w *ecs.World) {
	var playerX float64
	var hasPlayer bool
	ecs.ForEach2(w, component.PlayerKind, component.TransformKind, func(e ecs.Entity, _ *component.Player, tr *component.Transform) {
		playerX = tr.X
		hasPlayer = true
	})
	if !hasPlayer {
		return
	}

	ecs.ForEach3(w, component.FollowerKind, component.TransformKind, component.InputKind, func(e ecs.Entity, fo *component.Follower, tr *component.Transform, in *component.Input) {
		dx := playerX - tr.X
		dist := math.Abs(dx)
		if dist > fo.FollowRange || dist < fo.StopDistance {
			in.Movement.X = 0
			return
		}
		if dx < 0 {
			in.Movement.X = -1
		} else {
			in.Movement.X = 1
		}
	})
}
