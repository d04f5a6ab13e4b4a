package parametric

import (
	"math"
	"testing"
)

func TestArcEval(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 1, Start: Turns(0), Sweep: Turns(0.25)}
	if got := a.Eval(0); got != Pt(1, 0) {
		t.Errorf("got %v at t=0, want (1, 0)", got)
	}
	assertNear(t, Pt(math.Sqrt2/2, math.Sqrt2/2), a.Eval(0.5), 1e-12)
	assertNear(t, Pt(0, 1), a.Eval(1), 1e-12)

	if a.IsClosed() {
		t.Error("an arc is not closed")
	}
}

func TestArcEvalOffCenter(t *testing.T) {
	a := Arc{Center: Pt(3, -2), Radius: 2, Start: Turns(0.5), Sweep: Turns(-0.5)}
	assertNear(t, Pt(1, -2), a.Eval(0), 1e-12)
	assertNear(t, Pt(3, 0), a.Eval(0.5), 1e-12)
	assertNear(t, Pt(5, -2), a.Eval(1), 1e-12)
}

func TestArcLength(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 2, Start: Turns(0), Sweep: Turns(0.5)}
	if got := a.Length(); got != 2*math.Pi {
		t.Errorf("got length %v, want %v", got, 2*math.Pi)
	}
	// Sweep direction does not change the length.
	a = Arc{Center: Pt(0, 0), Radius: 3, Start: Turns(0), Sweep: Turns(-0.25)}
	if got, want := a.Length(), math.Pi/2*3; got != want {
		t.Errorf("got length %v, want %v", got, want)
	}
}

func TestArcReversed(t *testing.T) {
	a := Arc{Center: Pt(1, 1), Radius: 2, Start: Radians(0.3), Sweep: Radians(1.7)}
	r := a.Reversed()
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, a.Eval(1-ts), r.Eval(ts), 1e-12)
	}
	if got := r.Length(); got != a.Length() {
		t.Errorf("got reversed length %v, want %v", got, a.Length())
	}
}
