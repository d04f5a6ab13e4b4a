package parametric

import "math"

// Circle describes a circle.
type Circle struct {
	Center Point
	Radius float64
}

var _ AngularCurve = Circle{}

// EvalAngle returns the point on the circle at the angle th, measured
// anticlockwise from the positive x direction. At zero turns the result is
// Center + (Radius, 0); at a quarter turn it is Center + (0, Radius).
func (c Circle) EvalAngle(th Angle) Point {
	return c.Center.Add(PointFromAngle(th).Mul(c.Radius))
}

func (c Circle) IsClosed() bool { return true }

// Area returns the area of the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns the circumference of the circle.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
