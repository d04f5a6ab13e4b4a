package parametric

import (
	"fmt"
	"math"
)

// Point3 is a 3D point or vector with float64 coordinates. It mirrors
// [Point] in three dimensions.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Splat returns the point's x, y, and z coordinates.
func (pt Point3) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// XY returns the projection of pt onto the xy-plane.
func (pt Point3) XY() Point {
	return Point{X: pt.X, Y: pt.Y}
}

// Add adds two points componentwise.
func (pt Point3) Add(o Point3) Point3 {
	return Point3{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub subtracts two points componentwise.
func (pt Point3) Sub(o Point3) Point3 {
	return Point3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Mul scales the point by f.
func (pt Point3) Mul(f float64) Point3 {
	return Point3{
		X: pt.X * f,
		Y: pt.Y * f,
		Z: pt.Z * f,
	}
}

// Div divides the point by f.
func (pt Point3) Div(f float64) Point3 {
	return Point3{
		X: pt.X / f,
		Y: pt.Y / f,
		Z: pt.Z / f,
	}
}

// Negate returns a new point with the signs of all components flipped.
func (pt Point3) Negate() Point3 {
	return Point3{
		X: -pt.X,
		Y: -pt.Y,
		Z: -pt.Z,
	}
}

// Dot returns the dot product of pt and o.
func (pt Point3) Dot(o Point3) float64 {
	return pt.X*o.X + pt.Y*o.Y + pt.Z*o.Z
}

// Cross returns the cross product of pt and o.
func (pt Point3) Cross(o Point3) Point3 {
	return Point3{
		X: pt.Y*o.Z - pt.Z*o.Y,
		Y: pt.Z*o.X - pt.X*o.Z,
		Z: pt.X*o.Y - pt.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector from the origin to pt.
func (pt Point3) Hypot() float64 {
	return math.Sqrt(pt.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector from the origin to pt.
func (pt Point3) Hypot2() float64 {
	return pt.Dot(pt)
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return pt.Add(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point3) Midpoint(o Point3) Point3 {
	return Point3{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point3) DistanceSquared(o Point3) float64 {
	return pt.Sub(o).Hypot2()
}

// Normalize returns a point of magnitude 1.0 with the same direction as pt.
// This produces a NaN point if the magnitude is 0.
func (pt Point3) Normalize() Point3 {
	return pt.Mul(1.0 / pt.Hypot())
}

// IsInf reports whether at least one component is infinite.
func (pt Point3) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one component is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
