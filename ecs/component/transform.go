package component

// Transform is a world-space placement. Y grows upward; the renderer flips
// when projecting to the screen.
type Transform struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformKind = NewKind[Transform]()

func NewTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}
