package parametric

import (
	"fmt"
	"math"
)

// Polar is a polar coordinate: a radius paired with an angle. The pole is
// the origin and the polar axis is the positive x axis.
type Polar struct {
	Radius float64
	Angle  Angle
}

// Cartesian converts the polar coordinate to a Cartesian point,
// (cos θ, sin θ) · r.
//
// Negative radii are meaningful and point in the opposite direction, as is
// conventional for polar curves such as roses.
func (p Polar) Cartesian() Point {
	return PointFromAngle(p.Angle).Mul(p.Radius)
}

func (p Polar) String() string {
	return fmt.Sprintf("(%g, %v)", p.Radius, p.Angle)
}

// IsInf reports whether the radius or the angle is infinite.
func (p Polar) IsInf() bool {
	return math.IsInf(p.Radius, 0) || math.IsInf(float64(p.Angle), 0)
}

// IsNaN reports whether the radius or the angle is NaN.
func (p Polar) IsNaN() bool {
	return math.IsNaN(p.Radius) || math.IsNaN(float64(p.Angle))
}
