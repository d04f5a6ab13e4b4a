package parametric

import (
	"math"
	"testing"
)

func TestButterflyEvalAngle(t *testing.T) {
	var b Butterfly
	// At zero turns the radius collapses to e - 2 and points straight up.
	assertNear(t, Pt(0, math.E-2), b.EvalAngle(Turns(0)), 1e-15)
	// At a quarter turn the radius is near -1: e^cos θ and -2 cos 4θ cancel
	// to -1 and the sin^5(θ/12) term only contributes a few 1e-5.
	assertNear(t, Pt(-1, 0), b.EvalAngle(Turns(0.25)), 1e-4)
	if b.IsClosed() {
		t.Error("the butterfly only closes after twelve turns")
	}
}
