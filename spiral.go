package parametric

import "math"

// ArchimedeanSpiral is the spiral with polar equation r = A + Bθ. Successive
// turns are spaced 2πB apart; A rotates the spiral's starting point away
// from the origin.
type ArchimedeanSpiral struct {
	A float64
	B float64
}

var _ PolarCurve = ArchimedeanSpiral{}

func (s ArchimedeanSpiral) Radius(th Angle) float64 {
	return s.A + s.B*th.Radians()
}

func (s ArchimedeanSpiral) IsClosed() bool { return false }

// LogarithmicSpiral is the self-similar spiral with polar equation
// r = A·e^(Kθ). Scaling the curve is equivalent to rotating it.
type LogarithmicSpiral struct {
	A float64
	K float64
}

var _ PolarCurve = LogarithmicSpiral{}

func (s LogarithmicSpiral) Radius(th Angle) float64 {
	return s.A * math.Exp(s.K*th.Radians())
}

func (s LogarithmicSpiral) IsClosed() bool { return false }

// FermatSpiral is the parabolic spiral with polar equation r = A√θ. The
// radius is NaN for negative angles.
type FermatSpiral struct {
	A float64
}

var _ PolarCurve = FermatSpiral{}

func (s FermatSpiral) Radius(th Angle) float64 {
	return s.A * math.Sqrt(th.Radians())
}

func (s FermatSpiral) IsClosed() bool { return false }

// SinusoidalSpiral is the family of curves with polar equation
// r = A·cos(Nθ)^(1/N). Special cases include the line (N = −1), circle
// (N = 1), parabola (N = −1/2), and lemniscate (N = 2). Where cos(Nθ) is
// negative and the exponent is not an integer, the radius is NaN.
type SinusoidalSpiral struct {
	A float64
	N float64
}

var _ PolarCurve = SinusoidalSpiral{}

func (s SinusoidalSpiral) Radius(th Angle) float64 {
	return s.A * math.Pow(math.Cos(s.N*th.Radians()), 1/s.N)
}

func (s SinusoidalSpiral) IsClosed() bool { return false }
