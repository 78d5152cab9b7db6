package component

import "image/color"

// PointLight is a local glow source rendered as a radial falloff.
type PointLight struct {
	Color     color.NRGBA
	Intensity float64
	Range     float64
}

// Sunlight is the global directional light level.
type Sunlight struct {
	Illuminance float64
}

var (
	PointLightKind = NewKind[PointLight]()
	SunlightKind   = NewKind[Sunlight]()
)
