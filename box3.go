package parametric

import "math"

// Box3 is an axis-aligned box, described by the coordinates of two opposite
// corners. It is the spatial analogue of [Rect].
type Box3 struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// NewBox3FromPoints returns a box with the extents of p0 and p1, ensuring
// that all dimensions are non-negative.
func NewBox3FromPoints(p0, p1 Point3) Box3 {
	return Box3{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that all
// dimensions are non-negative.
func (b Box3) Abs() Box3 {
	return Box3{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

// Size returns the box's extent along each axis. Components may be negative.
func (b Box3) Size() Point3 {
	return Point3{
		X: b.X1 - b.X0,
		Y: b.Y1 - b.Y0,
		Z: b.Z1 - b.Z0,
	}
}

func (b Box3) Center() Point3 {
	return Point3{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
		Z: 0.5 * (b.Z0 + b.Z1),
	}
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if all dimensions are non-negative.
func (b Box3) Union(o Box3) Box3 {
	return Box3{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint computes the union with one point. A succession of UnionPoint
// operations on a series of points yields their enclosing box.
//
// Results are valid only if all dimensions are non-negative.
func (b Box3) UnionPoint(pt Point3) Box3 {
	return Box3{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}

func (b Box3) IsInf() bool {
	return math.IsInf(b.X0, 0) ||
		math.IsInf(b.Y0, 0) ||
		math.IsInf(b.Z0, 0) ||
		math.IsInf(b.X1, 0) ||
		math.IsInf(b.Y1, 0) ||
		math.IsInf(b.Z1, 0)
}

func (b Box3) IsNaN() bool {
	return math.IsNaN(b.X0) ||
		math.IsNaN(b.Y0) ||
		math.IsNaN(b.Z0) ||
		math.IsNaN(b.X1) ||
		math.IsNaN(b.Y1) ||
		math.IsNaN(b.Z1)
}
