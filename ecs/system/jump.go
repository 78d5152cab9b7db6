package system

import (
	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

// JumpSystem starts a jump on intent while grounded and feeds the decaying
// jump speed into the velocity. A jump in progress cannot restart until the
// character touches ground again, so holding the key never double-jumps.
type JumpSystem struct{}

func NewJumpSystem() *JumpSystem {
	return &JumpSystem{}
}

func (j *JumpSystem) Update(w *ecs.World) {
	ecs.ForEach4(w, component.JumpKind, component.GroundedKind, component.InputKind, component.VelocityKind, func(e ecs.Entity, jm *component.Jump, gr *component.Grounded, in *component.Input, vel *component.Velocity) {
		if in.JumpRequested() && gr.IsGrounded() {
			jm.TimeSinceStart.Start()
		} else {
			jm.TimeSinceStart.Advance(w.Delta())
		}

		loco, ok := ecs.Get(w, e, component.LocomotionKind)
		if !ok {
			return
		}
		vel.Y += jm.SpeedFraction() * loco.JumpSpeed * w.Delta()
	})
}
