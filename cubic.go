package parametric

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ PlanarCurve = CubicBez{}

func (c CubicBez) Eval(t float64) Point {
	return CubicBezier(c.P0, c.P1, c.P2, c.P3, t)
}

func (c CubicBez) IsClosed() bool { return false }

// Differentiate returns the derivative curve (hodograph) of the segment.
// The derivative of a cubic Bézier is a quadratic.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		P0: c.P1.Sub(c.P0).Mul(3.0),
		P1: c.P2.Sub(c.P1).Mul(3.0),
		P2: c.P3.Sub(c.P2).Mul(3.0),
	}
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// CubicBez3 is a cubic Bézier segment in three dimensions.
type CubicBez3 struct {
	P0 Point3
	P1 Point3
	P2 Point3
	P3 Point3
}

var _ SpatialCurve = CubicBez3{}

func (c CubicBez3) Eval(t float64) Point3 {
	return CubicBezier(c.P0, c.P1, c.P2, c.P3, t)
}

func (c CubicBez3) IsClosed() bool { return false }

// Differentiate returns the derivative curve (hodograph) of the segment.
func (c CubicBez3) Differentiate() QuadBez3 {
	return QuadBez3{
		P0: c.P1.Sub(c.P0).Mul(3.0),
		P1: c.P2.Sub(c.P1).Mul(3.0),
		P2: c.P3.Sub(c.P2).Mul(3.0),
	}
}

func (c CubicBez3) Start() Point3 { return c.P0 }
func (c CubicBez3) End() Point3   { return c.P3 }

func (c CubicBez3) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez3) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
