package system

import (
	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

// MovementSystem turns horizontal intent into velocity.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.InputKind, component.VelocityKind, component.LocomotionKind, func(e ecs.Entity, in *component.Input, vel *component.Velocity, loco *component.Locomotion) {
		vel.X += in.Movement.X * loco.MoveSpeed * w.Delta()
	})
}
