package parametric

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

var _ PlanarCurve = QuadBez{}

func (q QuadBez) Eval(t float64) Point {
	return QuadraticBezier(q.P0, q.P1, q.P2, t)
}

func (q QuadBez) IsClosed() bool { return false }

// Differentiate returns the derivative curve (hodograph) of the segment.
// The derivative of a quadratic Bézier is a line.
func (q QuadBez) Differentiate() Line {
	return Line{
		P0: q.P1.Sub(q.P0).Mul(2.0),
		P1: q.P2.Sub(q.P1).Mul(2.0),
	}
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// QuadBez3 is a quadratic Bézier segment in three dimensions.
type QuadBez3 struct {
	P0 Point3
	P1 Point3
	P2 Point3
}

var _ SpatialCurve = QuadBez3{}

func (q QuadBez3) Eval(t float64) Point3 {
	return QuadraticBezier(q.P0, q.P1, q.P2, t)
}

func (q QuadBez3) IsClosed() bool { return false }

// Differentiate returns the derivative curve (hodograph) of the segment.
func (q QuadBez3) Differentiate() Line3 {
	return Line3{
		P0: q.P1.Sub(q.P0).Mul(2.0),
		P1: q.P2.Sub(q.P1).Mul(2.0),
	}
}

func (q QuadBez3) Start() Point3 { return q.P0 }
func (q QuadBez3) End() Point3   { return q.P2 }

func (q QuadBez3) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez3) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}
