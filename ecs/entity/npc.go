package entity

import (
	"log"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

type npcSpawner struct{}

// Spawn builds an NPC: a kinematic follower root with the full locomotion
// component set, a dialog-trigger child, and a visual-model child.
func (npcSpawner) Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity {
	spec := ctx.Specs.Npc
	if spec == nil {
		log.Panicf("entity: npc prefab not preloaded")
	}
	w := ctx.World

	tr := normalizeTransform(ev.Transform)
	tr.ScaleX *= spec.Scale
	tr.ScaleY *= spec.Scale

	root := w.CreateEntity()
	rootTransform := tr
	mustAdd(w, root, component.TransformKind, &rootTransform)
	mustAdd(w, root, component.VelocityKind, &component.Velocity{})
	grounded := component.NewGrounded()
	mustAdd(w, root, component.GroundedKind, &grounded)
	jump := component.NewJump()
	mustAdd(w, root, component.JumpKind, &jump)
	mustAdd(w, root, component.InputKind, &component.Input{})
	mustAdd(w, root, component.CharacterControllerKind, &component.CharacterController{Radius: spec.Radius})
	mustAdd(w, root, component.LocomotionKind, &component.Locomotion{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: 0,
		Gravity:   -9.81,
	})
	mustAdd(w, root, component.FollowerKind, &component.Follower{
		FollowRange:  spec.FollowRange,
		StopDistance: spec.StopDistance,
	})
	w.SetName(root, spec.Name)

	trigger := w.CreateEntity()
	triggerTransform := component.NewTransform(tr.X, tr.Y)
	mustAdd(w, trigger, component.TransformKind, &triggerTransform)
	mustAdd(w, trigger, component.DialogTargetKind, &component.DialogTarget{
		DialogID: spec.DialogID,
		Radius:   spec.DialogRadius,
	})
	Attach(w, trigger, root)

	model := w.CreateEntity()
	modelTransform := component.NewTransform(tr.X, tr.Y)
	mustAdd(w, model, component.TransformKind, &modelTransform)
	mustAdd(w, model, component.ModelKind, &component.Model{})
	mustAdd(w, model, component.SpriteKind, &component.Sprite{
		Shape:  component.SpriteRect,
		Width:  2 * spec.Radius * spec.Scale,
		Height: spec.Height * spec.Scale,
		Color:  spec.ModelColor.OrDefault(defaultModelColor),
	})
	Attach(w, model, root)

	return root
}
