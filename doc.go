// Package parametric provides closed-form evaluation of parametric curves
// in two and three dimensions, from line segments and Bézier curves to the
// classical curve catalog: rolling-circle curves, spirals, polar curves, and
// knots. It is meant to feed renderers, plotters, and geometry pipelines
// with exact curve points and piecewise-linear approximations.
//
// # Contracts
//
// Curves come in three parametrizations, each described by a small
// interface:
//
//   - [PlanarCurve] and [SpatialCurve] evaluate a scalar parameter,
//     conventionally t ∈ [0, 1], to 2D and 3D points.
//   - [AngularCurve] and [AngularCurve3] evaluate an [Angle], for curves
//     whose natural parameter is angular.
//   - [PolarCurve] maps an angle to a radius.
//
// The parametrizations are bridged by adapters with a single source of
// truth: [ByTurns] and [ByTurns3] make scalar curves out of angular ones,
// mapping the unit interval to one full turn, and [Cartesian] makes a
// scalar curve out of a polar one via the angular form. Concrete curve
// families implement exactly one of the contracts; the other views are
// always derived. Every curve also declares whether it is closed, as a
// property of the family rather than a numeric observation.
//
// This package includes the following curve families:
//   - [Line], [Line3], [Arc], [QuadBez], [CubicBez], [QuadBez3], [CubicBez3]
//   - [Circle], [Ellipse], [Lissajous], [Butterfly], [Cycloid]
//   - [Epicycloid], [Hypocycloid], [Epitrochoid], [Hypotrochoid]
//   - [Cardioid], [Limacon], [Rose], [CycloidOfCeva]
//   - [ArchimedeanSpiral], [LogarithmicSpiral], [FermatSpiral],
//     [SinusoidalSpiral]
//   - [ConicSection], [LemniscateOfBernoulli], [TrisectrixOfMaclaurin],
//     [ConchoidOfDeSluze], [TschirnhausenCubic]
//   - [Helix], [TorusKnot], [TrefoilKnot], [FigureEightKnot]
//
// Scalar functions of one variable get the same treatment with
// [RealFunction] and a small catalog of polynomials, sinusoids, and
// staircase quantizers.
//
// # Sampling
//
// [Sample] and [Sample3] evaluate a curve at evenly spaced parameters and
// return iterators, so consumers that process points one at a time never
// allocate. Use [slices.Collect] to materialize a sequence, or [ToPolyline]
// and [ToPolyline3] to build a [Polyline] that remembers whether the source
// curve was closed. Polylines can measure their length and bounding box and
// apply affine transforms.
//
// # Béziers
//
// The Bézier evaluators [QuadraticBezier] and [CubicBezier] and their
// derivatives are generic over [Algebraic], the capability of being added,
// subtracted, and scaled. They evaluate control points of type [Point],
// [Point3], or [Scalar] alike. [QuadBez], [CubicBez], and their 3D
// counterparts wrap the evaluators as curve types, with Differentiate
// methods that return the hodograph as another curve.
//
// # Numeric behavior
//
// Every evaluation in this package is a total function. Families whose
// formulas are undefined somewhere (the secant-based cubics, the
// lemniscate, conics at their asymptotes) return the IEEE-754 infinities
// and NaNs that the arithmetic produces, and the adapters and samplers pass
// them through untouched. Nothing in this package validates, clamps, or
// panics; [Point.IsInf] and friends let callers detect specials when they
// care.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [MacTutor Famous Curves Index]
//   - [Roulette (curve)]
//   - [Fay's butterfly curve]
//   - [Torus knot]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [MacTutor Famous Curves Index]: https://mathshistory.st-andrews.ac.uk/Curves/
// [Roulette (curve)]: https://en.wikipedia.org/wiki/Roulette_(curve)
// [Fay's butterfly curve]: https://en.wikipedia.org/wiki/Butterfly_curve_(transcendental)
// [Torus knot]: https://en.wikipedia.org/wiki/Torus_knot
package parametric
