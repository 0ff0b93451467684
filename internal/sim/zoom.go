package sim

// Zoom is the multiplicative viewport scale. It divides the rendered
// half-extent and never feeds back into the physics. The level is
// unclamped, matching the reference behavior; repeated Out calls can
// drive it arbitrarily close to zero.
type Zoom struct {
	level float64
}

const zoomStep = 1.2

// NewZoom starts at the neutral level 1.0.
func NewZoom() *Zoom { return &Zoom{level: 1.0} }

// In magnifies the view by one step and returns the new level.
func (z *Zoom) In() float64 {
	z.level *= zoomStep
	return z.level
}

// Out widens the view by one step and returns the new level.
func (z *Zoom) Out() float64 {
	z.level /= zoomStep
	return z.level
}

// Level returns the current scale factor.
func (z *Zoom) Level() float64 { return z.level }
