package system

import (
	"math"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

// GravitySystem pulls every grounded-tracked character down. The pull ramps
// with airborne time, clamped between one and five times the base gravity,
// so long falls accelerate but never unbounded. The increment is applied
// per tick, not scaled by the delta.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (g *GravitySystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.GroundedKind, component.VelocityKind, component.LocomotionKind, func(e ecs.Entity, gr *component.Grounded, vel *component.Velocity, loco *component.Locomotion) {
		base := loco.Gravity
		scaled := base * gr.TimeSinceGrounded.Elapsed()
		// base is negative, so min/max bound the magnitude to [1x, 5x]
		vel.Y += math.Min(math.Max(scaled, base*5), base*1)
	})
}
