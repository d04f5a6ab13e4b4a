package parametric

import "math"

// Butterfly is Fay's butterfly curve, the plot of
//
//	e^cos θ − 2 cos 4θ − sin⁵(θ/12)
//
// swept as a radius around the origin. The sin⁵(θ/12) term gives the curve a
// period of 24π, so a single turn does not close it and the family is tagged
// open.
type Butterfly struct{}

var _ AngularCurve = Butterfly{}

func (Butterfly) EvalAngle(th Angle) Point {
	sin, cos := th.Sincos()
	r := math.Exp(cos) - 2*math.Cos(4*th.Radians()) - math.Pow(math.Sin(th.Radians()/12), 5)
	return Point{
		X: sin * r,
		Y: cos * r,
	}
}

func (Butterfly) IsClosed() bool { return false }
