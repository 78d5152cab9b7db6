package component

import "github.com/jakecoffman/cp"

// Velocity is the per-tick translation accumulator. Several systems add into
// it within one tick; the apply-velocity stage hands it to the character
// controller and zeroes it. It never carries over between ticks.
type Velocity struct {
	cp.Vector
}

var VelocityKind = NewKind[Velocity]()
