package parametric

import "math"

// Arc is a circular arc, swept from a start angle through a signed sweep
// angle. The scalar parameter covers the sweep: Eval(0) is the point at
// Start and Eval(1) the point at Start + Sweep.
type Arc struct {
	Center Point
	Radius float64
	// Start is the angle of the arc's first point.
	Start Angle
	// Sweep is the signed angle swept by the arc. Negative values trace in
	// the direction of decreasing angle.
	Sweep Angle
}

var _ PlanarCurve = Arc{}

func (a Arc) Eval(t float64) Point {
	th := a.Start + a.Sweep.Mul(t)
	return a.Center.Add(PointFromAngle(th).Mul(a.Radius))
}

func (a Arc) IsClosed() bool { return false }

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return math.Abs(a.Sweep.Radians()) * math.Abs(a.Radius)
}

// Reversed returns an arc tracing the same points in the opposite
// direction.
func (a Arc) Reversed() Arc {
	return Arc{
		Center: a.Center,
		Radius: a.Radius,
		Start:  a.Start + a.Sweep,
		Sweep:  -a.Sweep,
	}
}
