package parametric

// ConicSection is a conic in polar form with a focus at the pole:
// r = l / (1 + e cos θ), where l is the semi-latus rectum and e the
// eccentricity. e = 0 yields a circle, 0 < e < 1 an ellipse, e = 1 a
// parabola, and e > 1 a hyperbola. For e ≥ 1 the denominator reaches zero
// at the asymptotic angles and the radius diverges.
type ConicSection struct {
	SemiLatusRectum float64
	Eccentricity    float64
}

var _ PolarCurve = ConicSection{}

func (c ConicSection) Radius(th Angle) float64 {
	return c.SemiLatusRectum / (1 + c.Eccentricity*th.Cos())
}

func (c ConicSection) IsClosed() bool { return false }
