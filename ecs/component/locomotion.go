package component

// Locomotion carries the per-entity movement tuning loaded from the prefab
// spec. Gravity is negative; the clamp bounds in the gravity system derive
// from it.
type Locomotion struct {
	MoveSpeed float64
	JumpSpeed float64
	Gravity   float64
}

var LocomotionKind = NewKind[Locomotion]()
