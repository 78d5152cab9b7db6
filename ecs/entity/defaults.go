package entity

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Fallback colors for prefab specs that omit theirs.
var (
	defaultPlayerColor = nrgba(colornames.Crimson)
	defaultModelColor  = nrgba(colornames.Steelblue)
	defaultOrbColor    = nrgba(colornames.Wheat)
	defaultLightColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	defaultPropColor   = nrgba(colornames.Darkolivegreen)
)

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
