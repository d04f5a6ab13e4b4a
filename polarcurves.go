package parametric

import "math"

// Cardioid is the heart-shaped curve with polar equation r = A(1 + cos θ).
// The cusp sits at the origin and the curve spans [0, 2A] along the x axis.
// See [NewCardioidCurve] for the equivalent epicycloid construction.
type Cardioid struct {
	A float64
}

var _ PolarCurve = Cardioid{}

func (c Cardioid) Radius(th Angle) float64 {
	return c.A * (1 + th.Cos())
}

func (c Cardioid) IsClosed() bool { return true }

// Limacon is the limaçon of Pascal, with polar equation r = B + A cos θ. For
// B < A the curve has an inner loop, at B = A it degenerates to a cardioid,
// and for B ≥ 2A it is convex.
type Limacon struct {
	A float64
	B float64
}

var _ PolarCurve = Limacon{}

func (l Limacon) Radius(th Angle) float64 {
	return l.B + l.A*th.Cos()
}

func (l Limacon) IsClosed() bool { return true }

// Rose is a rose curve, with polar equation r = A cos(Kθ). Integer K yields
// K petals when K is odd and 2K petals when K is even.
type Rose struct {
	A float64
	K float64
}

var _ PolarCurve = Rose{}

func (r Rose) Radius(th Angle) float64 {
	return r.A * math.Cos(r.K*th.Radians())
}

func (r Rose) IsClosed() bool { return true }

// CycloidOfCeva is the curve with polar equation r = A(1 + 2 cos 2θ), used
// by Ceva for angle trisection.
type CycloidOfCeva struct {
	A float64
}

var _ PolarCurve = CycloidOfCeva{}

func (c CycloidOfCeva) Radius(th Angle) float64 {
	return c.A * (1 + 2*math.Cos(2*th.Radians()))
}

func (c CycloidOfCeva) IsClosed() bool { return true }
