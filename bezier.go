package parametric

// Algebraic describes types closed under addition, subtraction, and scalar
// multiplication. It is the capability the free Bézier evaluators blend
// over; [Point], [Point3], and [Scalar] satisfy it.
type Algebraic[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
}

// Scalar adapts a plain float64 to [Algebraic], for blending scalar
// quantities with the Bézier evaluators.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar  { return s + o }
func (s Scalar) Sub(o Scalar) Scalar  { return s - o }
func (s Scalar) Mul(f float64) Scalar { return Scalar(float64(s) * f) }

var (
	_ Algebraic[Scalar] = Scalar(0)
	_ Algebraic[Point]  = Point{}
	_ Algebraic[Point3] = Point3{}
)

// QuadraticBezier evaluates the quadratic Bézier with control points a, b, c
// at parameter t. At t = 0 the result is exactly a and at t = 1 exactly c;
// values of t outside [0, 1] extrapolate the curve.
func QuadraticBezier[T Algebraic[T]](a, b, c T, t float64) T {
	mt := 1.0 - t
	return a.Mul(mt * mt).
		Add(b.Mul(mt * 2.0).
			Add(c.Mul(t)).
			Mul(t))
}

// QuadraticBezierDerivative evaluates the first derivative of the quadratic
// Bézier with control points a, b, c at parameter t, with respect to t.
func QuadraticBezierDerivative[T Algebraic[T]](a, b, c T, t float64) T {
	mt := 1.0 - t
	return b.Sub(a).Mul(2.0 * mt).
		Add(c.Sub(b).Mul(2.0 * t))
}

// QuadraticBezierSecondDerivative evaluates the second derivative of the
// quadratic Bézier with control points a, b, c. It is constant in t; the
// parameter is accepted for symmetry with the other evaluators.
func QuadraticBezierSecondDerivative[T Algebraic[T]](a, b, c T, t float64) T {
	return c.Sub(b).Sub(b.Sub(a)).Mul(2.0)
}

// CubicBezier evaluates the cubic Bézier with control points a, b, c, d at
// parameter t. At t = 0 the result is exactly a and at t = 1 exactly d;
// values of t outside [0, 1] extrapolate the curve.
func CubicBezier[T Algebraic[T]](a, b, c, d T, t float64) T {
	mt := 1.0 - t
	return a.Mul(mt * mt * mt).
		Add(b.Mul(mt * mt * 3.0).
			Add(c.Mul(mt * 3.0).
				Add(d.Mul(t)).
				Mul(t)).
			Mul(t))
}

// CubicBezierDerivative evaluates the first derivative of the cubic Bézier
// with control points a, b, c, d at parameter t, with respect to t.
func CubicBezierDerivative[T Algebraic[T]](a, b, c, d T, t float64) T {
	mt := 1.0 - t
	return b.Sub(a).Mul(3.0 * mt * mt).
		Add(c.Sub(b).Mul(6.0 * mt * t)).
		Add(d.Sub(c).Mul(3.0 * t * t))
}

// CubicBezierSecondDerivative evaluates the second derivative of the cubic
// Bézier with control points a, b, c, d at parameter t, with respect to t.
func CubicBezierSecondDerivative[T Algebraic[T]](a, b, c, d T, t float64) T {
	mt := 1.0 - t
	return c.Sub(b).Sub(b.Sub(a)).Mul(6.0 * mt).
		Add(d.Sub(c).Sub(c.Sub(b)).Mul(6.0 * t))
}
