package component

import "github.com/jakecoffman/cp"

// Input is the per-tick movement intent for a controllable entity. The input
// system fills it for the player from the hardware poller; the follower
// system fills it for NPCs.
type Input struct {
	// Movement is the normalized intent vector. Movement.Y > 0.1 requests a
	// jump.
	Movement cp.Vector
	// InteractPressed is true on the tick the interact key went down.
	InteractPressed bool
}

var InputKind = NewKind[Input]()

// JumpRequested reports a jump intent this tick.
func (in Input) JumpRequested() bool {
	return in.Movement.Y > 0.1
}
