package parametric

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to and from the point types used by the ecosystems this
// package commonly feeds: gonum's spatial vectors for numeric pipelines,
// and the image and fixed-point types for rasterizers.

// R2 returns the point as a gonum spatial vector.
func (pt Point) R2() r2.Vec {
	return r2.Vec{X: pt.X, Y: pt.Y}
}

// PointFromR2 converts a gonum spatial vector to a point.
func PointFromR2(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// R3 returns the point as a gonum spatial vector.
func (pt Point3) R3() r3.Vec {
	return r3.Vec{X: pt.X, Y: pt.Y, Z: pt.Z}
}

// Point3FromR3 converts a gonum spatial vector to a point.
func Point3FromR3(v r3.Vec) Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}

// Image returns the point with both coordinates rounded to the nearest
// integer.
func (pt Point) Image() image.Point {
	return image.Point{
		X: int(math.Round(pt.X)),
		Y: int(math.Round(pt.Y)),
	}
}

// PointFromImage converts an image point to a point.
func PointFromImage(pt image.Point) Point {
	return Point{X: float64(pt.X), Y: float64(pt.Y)}
}

// Fixed returns the point in 26.6 fixed-point representation, rounding to
// the nearest representable coordinate.
func (pt Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(pt.X * 64)),
		Y: fixed.Int26_6(math.Round(pt.Y * 64)),
	}
}

// PointFromFixed converts a 26.6 fixed-point point to a point.
func PointFromFixed(pt fixed.Point26_6) Point {
	return Point{
		X: float64(pt.X) / 64,
		Y: float64(pt.Y) / 64,
	}
}
