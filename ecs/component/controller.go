package component

import "github.com/jakecoffman/cp"

// ControllerOutput is what the physics controller produced on its last step.
// It lags the current tick by design: the apply-velocity stage reads the
// previous step's output when deciding the wall-stick clamp.
type ControllerOutput struct {
	DesiredTranslation   cp.Vector
	EffectiveTranslation cp.Vector
	Grounded             bool
}

// CharacterController is the per-entity bridge to the kinematic mover.
// Desired is the translation requested for the next physics step; Output is
// the result of the last one.
type CharacterController struct {
	Radius float64

	Desired    cp.Vector
	HasDesired bool

	Output    ControllerOutput
	HasOutput bool
}

var CharacterControllerKind = NewKind[CharacterController]()
