package parametric

import (
	"fmt"
	"math"
)

// Point is a 2D point or vector with float64 coordinates. The same type
// serves both roles: curve evaluation produces positions, while differences,
// derivatives, and Bézier blending treat the values as vectors.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromAngle returns the unit vector pointing in the direction of th.
// At 0 turns the result is (1, 0); at a quarter turn it is (0, 1).
func PointFromAngle(th Angle) Point {
	sin, cos := th.Sincos()
	return Point{X: cos, Y: sin}
}

// Splat returns the point's x and y coordinates.
func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Transform applies the affine transform to the point.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Add adds two points componentwise.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub subtracts two points componentwise.
func (pt Point) Sub(o Point) Point {
	return Point{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Mul scales the point by f.
func (pt Point) Mul(f float64) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

// Div divides the point by f.
func (pt Point) Div(f float64) Point {
	return Point{
		X: pt.X / f,
		Y: pt.Y / f,
	}
}

// Negate returns a new point with the signs of x and y flipped.
func (pt Point) Negate() Point {
	return Point{
		X: -pt.X,
		Y: -pt.Y,
	}
}

// Dot returns the dot product of pt and o.
func (pt Point) Dot(o Point) float64 {
	return pt.X*o.X + pt.Y*o.Y
}

// Cross returns the cross product of pt and o.
func (pt Point) Cross(o Point) float64 {
	return pt.X*o.Y - pt.Y*o.X
}

// Hypot returns the magnitude of the vector from the origin to pt.
func (pt Point) Hypot() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// Hypot2 returns the squared magnitude of the vector from the origin to pt.
//
// This function is more efficient than squaring the result of [Point.Hypot].
func (pt Point) Hypot2() float64 {
	return pt.Dot(pt)
}

// Angle returns the angle between pt and (1, 0) in the positive y direction.
// This is atan2(y, x).
func (pt Point) Angle() Angle {
	return Angle(math.Atan2(pt.Y, pt.X))
}

// Polar returns the polar coordinate of pt, with the origin as the pole.
func (pt Point) Polar() Polar {
	return Polar{
		Radius: pt.Hypot(),
		Angle:  pt.Angle(),
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	// pt + t * (o-pt)
	return pt.Add(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Normalize returns a point of magnitude 1.0 with the same angle as pt.
// This produces a NaN point if the magnitude is 0.
func (pt Point) Normalize() Point {
	return pt.Mul(1.0 / pt.Hypot())
}

// Round returns a new point with x and y rounded to the nearest integers.
func (pt Point) Round() Point {
	return Point{
		X: math.Round(pt.X),
		Y: math.Round(pt.Y),
	}
}

// Ceil returns a new point with x and y rounded up to the nearest integers.
func (pt Point) Ceil() Point {
	return Point{
		X: math.Ceil(pt.X),
		Y: math.Ceil(pt.Y),
	}
}

// Floor returns a new point with x and y rounded down to the nearest integers.
func (pt Point) Floor() Point {
	return Point{
		X: math.Floor(pt.X),
		Y: math.Floor(pt.Y),
	}
}

// Trunc returns a new point with x and y rounded towards zero to the nearest
// integers.
func (pt Point) Trunc() Point {
	return Point{
		X: math.Trunc(pt.X),
		Y: math.Trunc(pt.Y),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Lerp linearly interpolates between two scalars.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
