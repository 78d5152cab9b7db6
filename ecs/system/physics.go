package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/physics"
)

// PhysicsSystem owns the bridge between controller components and the
// kinematic mover: it registers characters on first sight, removes dead
// ones, applies desired translations and writes back the step output.
type PhysicsSystem struct {
	world *physics.World
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{world: world}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	for _, e := range p.world.Characters() {
		if !w.IsAlive(e) || !ecs.Has(w, e, component.CharacterControllerKind) {
			p.world.RemoveCharacter(e)
		}
	}

	ecs.ForEach2(w, component.CharacterControllerKind, component.TransformKind, func(e ecs.Entity, ctrl *component.CharacterController, tr *component.Transform) {
		ch := p.world.Character(e)
		if ch == nil {
			ch = p.world.AddCharacter(e, cp.Vector{X: tr.X, Y: tr.Y}, ctrl.Radius)
		}

		desired := cp.Vector{}
		if ctrl.HasDesired {
			desired = ctrl.Desired
		}
		ctrl.Output = p.world.MoveCharacter(ch, desired)
		ctrl.HasOutput = true
		ctrl.Desired = cp.Vector{}
		ctrl.HasDesired = false

		pos := ch.Position()
		tr.X = pos.X
		tr.Y = pos.Y
	})

	p.world.Step(w.Delta())
}
