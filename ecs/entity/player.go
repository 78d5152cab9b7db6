package entity

import (
	"log"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

// SpawnPlayer creates the player once at startup. The player is not part of
// the GameObject enumeration; it is not an editor-spawnable scene object.
func SpawnPlayer(ctx *Context) ecs.Entity {
	spec := ctx.Specs.Player
	if spec == nil {
		log.Panicf("entity: player prefab not preloaded")
	}
	w := ctx.World

	e := w.CreateEntity()
	tr := component.NewTransform(spec.StartX, spec.StartY)
	mustAdd(w, e, component.TransformKind, &tr)
	mustAdd(w, e, component.PlayerKind, &component.Player{})
	mustAdd(w, e, component.InputKind, &component.Input{})
	mustAdd(w, e, component.VelocityKind, &component.Velocity{})
	grounded := component.NewGrounded()
	mustAdd(w, e, component.GroundedKind, &grounded)
	jump := component.NewJump()
	mustAdd(w, e, component.JumpKind, &jump)
	mustAdd(w, e, component.CharacterControllerKind, &component.CharacterController{Radius: spec.Radius})
	mustAdd(w, e, component.LocomotionKind, &component.Locomotion{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
		Gravity:   spec.Gravity,
	})
	mustAdd(w, e, component.SpriteKind, &component.Sprite{
		Shape:  component.SpriteCircle,
		Radius: spec.Radius,
		Color:  spec.Color.OrDefault(defaultPlayerColor),
	})
	w.SetName(e, spec.Name)
	return e
}
