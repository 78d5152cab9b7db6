package system

import (
	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

// GroundedSystem tracks time since each character last touched the ground,
// reading the controller output of the previous physics step. An entity
// whose controller has not produced output yet counts as airborne.
type GroundedSystem struct{}

func NewGroundedSystem() *GroundedSystem {
	return &GroundedSystem{}
}

func (g *GroundedSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.GroundedKind, component.CharacterControllerKind, func(e ecs.Entity, gr *component.Grounded, ctrl *component.CharacterController) {
		if ctrl.HasOutput && ctrl.Output.Grounded {
			gr.TimeSinceGrounded.Start()
			return
		}
		gr.TimeSinceGrounded.Advance(w.Delta())
	})
}
