package parametric

import "math"

// Lissajous is a unit-amplitude Lissajous figure, the composition of two
// perpendicular sinusoids: (sin(FreqX·θ + Phase), sin(FreqY·θ)). The figure
// only closes when FreqX/FreqY is rational, so the family is tagged open.
type Lissajous struct {
	FreqX float64
	FreqY float64
	Phase Angle
}

var _ AngularCurve = Lissajous{}

func (l Lissajous) EvalAngle(th Angle) Point {
	return Point{
		X: math.Sin(l.FreqX*th.Radians() + l.Phase.Radians()),
		Y: math.Sin(l.FreqY * th.Radians()),
	}
}

func (l Lissajous) IsClosed() bool { return false }
