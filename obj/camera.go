package obj

// Camera centers the view on a world coordinate. World space is Y-up;
// WorldToScreen flips to screen space.
type Camera struct {
	X float64
	Y float64

	viewW float64
	viewH float64

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

func NewCamera(viewW, viewH int) *Camera {
	return &Camera{
		viewW:  float64(viewW),
		viewH:  float64(viewH),
		smooth: 0.15,
	}
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.smooth = f
}

// SetWorldBounds sets the world dimensions used for clamping. The world's
// bottom-left corner is the origin.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// Follow moves the camera toward the target world coordinate. Call from the
// fixed-rate update loop to get consistent smoothing.
func (c *Camera) Follow(tx, ty float64) {
	c.X += (tx - c.X) * c.smooth
	c.Y += (ty - c.Y) * c.smooth
	c.clampToWorld()
}

// Snap jumps the camera straight to the target.
func (c *Camera) Snap(tx, ty float64) {
	c.X = tx
	c.Y = ty
	c.clampToWorld()
}

func (c *Camera) clampToWorld() {
	if c.worldW > c.viewW {
		c.X = clamp(c.X, c.viewW/2, c.worldW-c.viewW/2)
	}
	if c.worldH > c.viewH {
		c.Y = clamp(c.Y, c.viewH/2, c.worldH-c.viewH/2)
	}
}

// WorldToScreen maps a Y-up world coordinate to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := wx - c.X + c.viewW/2
	sy := c.viewH/2 - (wy - c.Y)
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := sx + c.X - c.viewW/2
	wy := c.Y + c.viewH/2 - sy
	return wx, wy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
