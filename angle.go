package parametric

import (
	"fmt"
	"math"
)

// An Angle is a plane angle, stored in radians. Being a defined float64
// type, angles support the usual arithmetic operators directly; Mul and Div
// are provided for scaling by plain scalars.
//
// One turn is a full revolution, 2π radians. Angular curve parameters are
// expressed in turns so that the unit interval [0, 1] spans one revolution.
type Angle float64

// Radians returns the angle of rad radians.
func Radians(rad float64) Angle {
	return Angle(rad)
}

// Turns returns the angle of t turns, i.e. t full revolutions.
func Turns(t float64) Angle {
	return Angle(t * (2 * math.Pi))
}

// Degrees returns the angle of d degrees.
func Degrees(d float64) Angle {
	return Angle(d * (math.Pi / 180))
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Turns returns the angle in turns.
func (a Angle) Turns() float64 {
	return float64(a) / (2 * math.Pi)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * (180 / math.Pi)
}

// Mul scales the angle by f.
func (a Angle) Mul(f float64) Angle {
	return Angle(float64(a) * f)
}

// Div divides the angle by f.
func (a Angle) Div(f float64) Angle {
	return Angle(float64(a) / f)
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// Sincos returns the sine and cosine of the angle.
func (a Angle) Sincos() (sin, cos float64) {
	return math.Sincos(float64(a))
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(float64(a))
}

// Sec returns the secant of the angle, 1/cos. Near odd multiples of a
// quarter turn the result grows without bound; the overflow to ±Inf is
// propagated, not guarded.
func (a Angle) Sec() float64 {
	return 1 / math.Cos(float64(a))
}

func (a Angle) String() string {
	return fmt.Sprintf("%g rad", float64(a))
}
