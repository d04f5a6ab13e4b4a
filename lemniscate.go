package parametric

import "math"

// LemniscateOfBernoulli is the figure-eight curve with polar equation
// r = A√(cos 2θ). The curve only exists where cos 2θ is non-negative; in
// the two excluded angular sectors the radius is NaN.
type LemniscateOfBernoulli struct {
	A float64
}

var _ PolarCurve = LemniscateOfBernoulli{}

func (l LemniscateOfBernoulli) Radius(th Angle) float64 {
	return l.A * math.Sqrt(math.Cos(2*th.Radians()))
}

func (l LemniscateOfBernoulli) IsClosed() bool { return true }
