package parametric

import "math"

// TorusKnot is the (P, Q) torus knot: a closed curve winding P times around
// the axis of a torus with major radius Radius while winding Q times around
// its tube. P and Q should be coprime for the curve to be a true knot.
type TorusKnot struct {
	P      int
	Q      int
	Radius float64
}

var _ AngularCurve3 = TorusKnot{}

func (k TorusKnot) EvalAngle(th Angle) Point3 {
	p := float64(k.P)
	q := float64(k.Q)
	sinp, cosp := math.Sincos(p * th.Radians())
	sinq, cosq := math.Sincos(q * th.Radians())
	r := k.Radius + cosq
	return Point3{
		X: r * cosp,
		Y: r * sinp,
		Z: -sinq,
	}
}

func (k TorusKnot) IsClosed() bool { return true }

// TrefoilKnot is the simplest nontrivial knot, in its standard trigonometric
// embedding. For the torus-knot form, use [TorusKnot] with P = 2, Q = 3.
type TrefoilKnot struct{}

var _ AngularCurve3 = TrefoilKnot{}

func (TrefoilKnot) EvalAngle(th Angle) Point3 {
	sin, cos := th.Sincos()
	sin2, cos2 := math.Sincos(2 * th.Radians())
	return Point3{
		X: sin + 2*sin2,
		Y: cos - 2*cos2,
		Z: -math.Sin(3 * th.Radians()),
	}
}

func (TrefoilKnot) IsClosed() bool { return true }

// FigureEightKnot is the four-crossing knot in its standard trigonometric
// embedding.
type FigureEightKnot struct{}

var _ AngularCurve3 = FigureEightKnot{}

func (FigureEightKnot) EvalAngle(th Angle) Point3 {
	sin3, cos3 := math.Sincos(3 * th.Radians())
	r := 2 + math.Cos(2*th.Radians())
	return Point3{
		X: r * cos3,
		Y: r * sin3,
		Z: math.Sin(4 * th.Radians()),
	}
}

func (FigureEightKnot) IsClosed() bool { return true }
