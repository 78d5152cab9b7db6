package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/obj"
)

// InputSystem copies the polled hardware state into the player's intent
// component. NPC intent is written by the follower system instead.
type InputSystem struct {
	input *obj.Input
}

func NewInputSystem(input *obj.Input) *InputSystem {
	return &InputSystem{input: input}
}

func (i *InputSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PlayerKind, component.InputKind, func(e ecs.Entity, _ *component.Player, in *component.Input) {
		in.Movement = cp.Vector{X: i.input.MoveX}
		if i.input.JumpHeld {
			in.Movement.Y = 1
		}
		in.InteractPressed = i.input.InteractPressed
	})
}
