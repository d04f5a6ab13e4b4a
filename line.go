package parametric

// Line represents a line segment, evaluated by linear interpolation between
// its endpoints.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ PlanarCurve = Line{}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) IsClosed() bool { return false }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Midpoint returns the point halfway between the line's endpoints.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Reversed returns a line with the endpoints swapped, tracing the same
// segment in the opposite direction.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// Line3 represents a line segment in three dimensions.
type Line3 struct {
	P0 Point3
	P1 Point3
}

var _ SpatialCurve = Line3{}

func (l Line3) Eval(t float64) Point3 {
	return l.P0.Lerp(l.P1, t)
}

func (l Line3) IsClosed() bool { return false }

// Length returns the length of the line.
func (l Line3) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Midpoint returns the point halfway between the line's endpoints.
func (l Line3) Midpoint() Point3 {
	return l.P0.Midpoint(l.P1)
}

// Reversed returns a line with the endpoints swapped.
func (l Line3) Reversed() Line3 {
	return Line3{P0: l.P1, P1: l.P0}
}

func (l Line3) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line3) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
