package component

import "math"

// speedFractionFloor zeroes the sigmoid tail so a long-finished jump adds no
// residual thrust.
const speedFractionFloor = 0.001

// Jump tracks time since the jump started. The airborne phase fraction is
// derived from the timer; there is no separate state enum.
type Jump struct {
	TimeSinceStart Timer
}

var JumpKind = NewKind[Jump]()

func NewJump() Jump {
	return Jump{TimeSinceStart: NewTimer()}
}

// SpeedFraction is a shifted and scaled sigmoid of the time since the jump
// started: near 1 right after takeoff, decaying to 0 by roughly 1.5 seconds.
func (j Jump) SpeedFraction() float64 {
	t := j.TimeSinceStart.Elapsed()
	suggestion := 1. / (1. + math.Exp(6.*(t-1./2.)))
	if suggestion > speedFractionFloor {
		return suggestion
	}
	return 0
}
