package component

// GroundedEpsilon is the elapsed-time threshold below which an entity counts
// as currently grounded.
const GroundedEpsilon = 0.00001

// Grounded converts the controller's per-tick ground-contact signal into a
// continuous time-airborne measure.
type Grounded struct {
	TimeSinceGrounded Timer
}

var GroundedKind = NewKind[Grounded]()

func NewGrounded() Grounded {
	return Grounded{TimeSinceGrounded: NewTimer()}
}

// IsGrounded reports whether the entity touched ground this tick.
func (g Grounded) IsGrounded() bool {
	return g.TimeSinceGrounded.Elapsed() < GroundedEpsilon
}
