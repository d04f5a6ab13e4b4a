package parametric

import "math"

// Ellipse describes an axis-aligned ellipse. Radii holds the semi-axis
// lengths along x and y.
type Ellipse struct {
	Center Point
	Radii  Point
}

var _ AngularCurve = Ellipse{}

// NewEllipseFromCircle returns an ellipse with both semi-axes equal to the
// circle's radius.
func NewEllipseFromCircle(c Circle) Ellipse {
	return Ellipse{
		Center: c.Center,
		Radii:  Point{X: c.Radius, Y: c.Radius},
	}
}

// EvalAngle returns the point on the ellipse at the parameter angle th.
// Except on the axes, th is the parameter of the standard parametrization
// (Rx cos θ, Ry sin θ), not the geometric angle of the resulting point.
func (e Ellipse) EvalAngle(th Angle) Point {
	sin, cos := th.Sincos()
	return e.Center.Add(Point{X: e.Radii.X * cos, Y: e.Radii.Y * sin})
}

func (e Ellipse) IsClosed() bool { return true }

// Area returns the area of the ellipse.
func (e Ellipse) Area() float64 {
	return math.Pi * e.Radii.X * e.Radii.Y
}

func (e Ellipse) IsInf() bool {
	return e.Center.IsInf() || e.Radii.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.Center.IsNaN() || e.Radii.IsNaN()
}
