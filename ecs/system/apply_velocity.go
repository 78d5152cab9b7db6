package system

import (
	"math"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

const translationEpsilon = 0.0001

// ApplyVelocitySystem commits this tick's accumulated velocity to the
// character controller and zeroes it. Before committing it clamps velocity
// into a wall the previous step already blocked, so a character pressed
// against a wall doesn't keep winding up speed it can never spend.
type ApplyVelocitySystem struct{}

func NewApplyVelocitySystem() *ApplyVelocitySystem {
	return &ApplyVelocitySystem{}
}

func (a *ApplyVelocitySystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.VelocityKind, component.CharacterControllerKind, func(e ecs.Entity, vel *component.Velocity, ctrl *component.CharacterController) {
		if ctrl.HasOutput {
			out := ctrl.Output
			blockedX := math.Abs(out.EffectiveTranslation.X) < translationEpsilon &&
				math.Abs(vel.X) > translationEpsilon
			if blockedX {
				if out.DesiredTranslation.X < 0 {
					vel.X = math.Max(vel.X, 0)
				} else if out.DesiredTranslation.X > 0 {
					vel.X = math.Min(vel.X, 0)
				}
			}
		}

		ctrl.Desired = vel.Vector
		ctrl.HasDesired = true
		vel.Vector.X = 0
		vel.Vector.Y = 0
	})
}
