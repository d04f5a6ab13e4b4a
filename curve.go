package parametric

// PlanarCurve describes a curve parametrized by a scalar, evaluating to 2D
// points.
//
// Eval is expected to be a total, pure function: any finite t has a defined
// result, and formulas that are undefined somewhere (division by zero,
// square roots of negative values) let the IEEE-754 specials propagate
// rather than reporting errors. Generally, t is in the range [0, 1], and
// [Sample] only ever evaluates that range; values outside it extrapolate
// where the underlying formula allows.
type PlanarCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// IsClosed reports whether the curve's start and end are meant to
	// join. Closedness is a declared property of the curve family, not a
	// geometric fact derived from evaluation.
	IsClosed() bool
}

// SpatialCurve describes a curve parametrized by a scalar, evaluating to 3D
// points. See [PlanarCurve] for the evaluation contract.
type SpatialCurve interface {
	Eval(t float64) Point3
	IsClosed() bool
}

// AngularCurve describes a planar curve whose natural parameter is an
// angle. Implementations provide only EvalAngle; the scalar form is derived
// by [ByTurns], never implemented per family.
type AngularCurve interface {
	// EvalAngle evaluates the curve at the angle th.
	EvalAngle(th Angle) Point
	IsClosed() bool
}

// AngularCurve3 describes a spatial curve whose natural parameter is an
// angle. Implementations provide only EvalAngle; the scalar form is derived
// by [ByTurns3], never implemented per family.
type AngularCurve3 interface {
	EvalAngle(th Angle) Point3
	IsClosed() bool
}

// PolarCurve describes a planar curve defined by a radius as a function of
// angle. Implementations provide only Radius; Cartesian evaluation is
// derived by [Cartesian], never implemented per family, so that the
// polar-to-Cartesian identity has a single source of truth.
type PolarCurve interface {
	// Radius returns the radius at the angle th. Radii may be negative
	// (pointing opposite the angle's direction), infinite, or NaN where the
	// family's formula is undefined.
	Radius(th Angle) float64
	IsClosed() bool
}

// EvalPolar evaluates a polar curve to a polar coordinate.
func EvalPolar(c PolarCurve, th Angle) Polar {
	return Polar{Radius: c.Radius(th), Angle: th}
}

// ByTurns adapts an angle-parametrized curve to the scalar parameter
// contract, with t measured in turns: Eval(t) = EvalAngle(Turns(t)), so the
// unit interval spans one revolution.
//
// The returned curve also still implements [AngularCurve].
func ByTurns(c AngularCurve) PlanarCurve {
	return turnsCurve{c}
}

// ByTurns3 adapts an angle-parametrized spatial curve to the scalar
// parameter contract, with t measured in turns.
//
// The returned curve also still implements [AngularCurve3].
func ByTurns3(c AngularCurve3) SpatialCurve {
	return turnsCurve3{c}
}

// Cartesian adapts a polar curve to the scalar parameter contract. The
// angular form is derived first, EvalAngle(th) = EvalPolar(c, th).Cartesian(),
// and the scalar form then follows from the same turns parametrization used
// by [ByTurns].
//
// The returned curve also still implements [AngularCurve].
func Cartesian(c PolarCurve) PlanarCurve {
	return turnsCurve{polarAngular{c}}
}

// turnsCurve derives Eval from EvalAngle. It is the only place the
// turns-to-angle conversion of the curve parameter happens.
type turnsCurve struct {
	c AngularCurve
}

func (tc turnsCurve) Eval(t float64) Point     { return tc.c.EvalAngle(Turns(t)) }
func (tc turnsCurve) EvalAngle(th Angle) Point { return tc.c.EvalAngle(th) }
func (tc turnsCurve) IsClosed() bool           { return tc.c.IsClosed() }

type turnsCurve3 struct {
	c AngularCurve3
}

func (tc turnsCurve3) Eval(t float64) Point3     { return tc.c.EvalAngle(Turns(t)) }
func (tc turnsCurve3) EvalAngle(th Angle) Point3 { return tc.c.EvalAngle(th) }
func (tc turnsCurve3) IsClosed() bool            { return tc.c.IsClosed() }

// polarAngular derives EvalAngle from Radius. It is the only place the
// polar-to-Cartesian conversion of curve samples happens.
type polarAngular struct {
	c PolarCurve
}

func (pa polarAngular) EvalAngle(th Angle) Point { return EvalPolar(pa.c, th).Cartesian() }
func (pa polarAngular) IsClosed() bool           { return pa.c.IsClosed() }
