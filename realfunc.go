package parametric

import "math"

// RealFunction describes a real-valued function of one real variable. Like
// the curve contracts, implementations are total: where a formula is
// undefined the IEEE-754 specials propagate.
type RealFunction interface {
	Eval(x float64) float64
}

// LinearEquation is the line y = Slope·x + YIntercept.
type LinearEquation struct {
	Slope      float64
	YIntercept float64
}

var _ RealFunction = LinearEquation{}

func (l LinearEquation) Eval(x float64) float64 {
	return l.Slope*x + l.YIntercept
}

// Quadratic is the polynomial y = Ax² + Bx + C.
type Quadratic struct {
	A float64
	B float64
	C float64
}

var _ RealFunction = Quadratic{}

func (q Quadratic) Eval(x float64) float64 {
	return (q.A*x+q.B)*x + q.C
}

// Cubic is the polynomial y = Ax³ + Bx² + Cx + D.
type Cubic struct {
	A float64
	B float64
	C float64
	D float64
}

var _ RealFunction = Cubic{}

func (c Cubic) Eval(x float64) float64 {
	return ((c.A*x+c.B)*x+c.C)*x + c.D
}

// Parabola is the unit parabola y = x².
type Parabola struct{}

var _ RealFunction = Parabola{}

func (Parabola) Eval(x float64) float64 {
	return x * x
}

// SineWave is a sinusoid with Frequency cycles per unit of x. Phase offsets
// the wave's output, not its argument: y = Amplitude·(sin(2π·Frequency·x) + Phase).
type SineWave struct {
	Amplitude float64
	Frequency float64
	Phase     float64
}

var _ RealFunction = SineWave{}

func (s SineWave) Eval(x float64) float64 {
	return s.Amplitude * (Turns(s.Frequency*x).Sin() + s.Phase)
}

// RoundingMode selects how the staircase functions snap scaled values to
// integers.
type RoundingMode int

const (
	RoundFloor RoundingMode = iota
	RoundCeiling
	RoundNearest
)

func (m RoundingMode) apply(x float64) float64 {
	switch m {
	case RoundCeiling:
		return math.Ceil(x)
	case RoundNearest:
		return math.Round(x)
	default:
		return math.Floor(x)
	}
}

// StepsScale quantizes x to a staircase with the given number of steps per
// unit, snapping in the direction chosen by mode. steps == 0 divides by
// zero and yields the usual IEEE-754 results.
func StepsScale(x, steps float64, mode RoundingMode) float64 {
	return mode.apply(x*steps) / steps
}

// StaircaseFloor quantizes x downward to a staircase with the given number
// of steps per unit.
func StaircaseFloor(x, steps float64) float64 {
	return StepsScale(x, steps, RoundFloor)
}

// StaircaseCeiling quantizes x upward to a staircase with the given number
// of steps per unit.
func StaircaseCeiling(x, steps float64) float64 {
	return StepsScale(x, steps, RoundCeiling)
}

// StaircaseRound quantizes x to the nearest step of a staircase with the
// given number of steps per unit.
func StaircaseRound(x, steps float64) float64 {
	return StepsScale(x, steps, RoundNearest)
}
