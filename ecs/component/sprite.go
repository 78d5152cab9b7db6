package component

import "image/color"

type SpriteShape int

const (
	SpriteRect SpriteShape = iota
	SpriteCircle
)

// Sprite is a primitive-shape visual. Entities render as colored rects and
// circles; there is no sheet-based animation in this game.
type Sprite struct {
	Shape  SpriteShape
	Width  float64
	Height float64
	Radius float64
	Color  color.NRGBA
}

var SpriteKind = NewKind[Sprite]()
