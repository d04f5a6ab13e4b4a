package parametric

import (
	"math"
	"testing"
)

func TestLineEval(t *testing.T) {
	l := Line{Pt(1, 2), Pt(5, 4)}
	if got := l.Eval(0); got != l.P0 {
		t.Errorf("got %v at t=0, want %v", got, l.P0)
	}
	if got := l.Eval(1); got != l.P1 {
		t.Errorf("got %v at t=1, want %v", got, l.P1)
	}
	diff(t, Pt(3, 3), l.Eval(0.5))
	// Parameters outside [0, 1] extrapolate.
	diff(t, Pt(9, 6), l.Eval(2))
	diff(t, Pt(-3, 0), l.Eval(-1))

	if l.IsClosed() {
		t.Error("a line segment is not closed")
	}
}

func TestLineLength(t *testing.T) {
	l := Line{Pt(1, 1), Pt(4, 5)}
	if got := l.Length(); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
	if got := l.Reversed().Length(); got != 5 {
		t.Errorf("got reversed length %v, want 5", got)
	}
}

func TestLineMidpoint(t *testing.T) {
	l := Line{Pt(1, 2), Pt(5, 4)}
	diff(t, Pt(3, 3), l.Midpoint())
	diff(t, Pt(3, 3), l.Reversed().Midpoint())
}

func TestLineReversed(t *testing.T) {
	l := Line{Pt(1, 2), Pt(5, 4)}
	r := l.Reversed()
	diff(t, Line{Pt(5, 4), Pt(1, 2)}, r)
	const n = 4
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, l.Eval(1-ts), r.Eval(ts), 1e-12)
	}
}

func TestLineTransform(t *testing.T) {
	l := Line{Pt(1, 2), Pt(5, 4)}
	moved := l.Transform(Translate(Pt(-1, -2)))
	diff(t, Line{Pt(0, 0), Pt(4, 2)}, moved)
}

func TestLineSpecials(t *testing.T) {
	l := Line{Pt(0, 0), Pt(math.Inf(1), 2)}
	if !l.IsInf() || l.IsNaN() {
		t.Errorf("got IsInf=%v IsNaN=%v, want true false", l.IsInf(), l.IsNaN())
	}
	l = Line{Pt(math.NaN(), 0), Pt(1, 2)}
	if l.IsInf() || !l.IsNaN() {
		t.Errorf("got IsInf=%v IsNaN=%v, want false true", l.IsInf(), l.IsNaN())
	}
}

func TestLine3(t *testing.T) {
	l := Line3{Pt3(0, 0, 0), Pt3(2, 4, 4)}
	if got := l.Eval(0); got != l.P0 {
		t.Errorf("got %v at t=0, want %v", got, l.P0)
	}
	if got := l.Eval(1); got != l.P1 {
		t.Errorf("got %v at t=1, want %v", got, l.P1)
	}
	diff(t, Pt3(1, 2, 2), l.Eval(0.5))
	if got := l.Length(); got != 6 {
		t.Errorf("got length %v, want 6", got)
	}
	diff(t, Pt3(1, 2, 2), l.Midpoint())
	diff(t, Line3{l.P1, l.P0}, l.Reversed())
}
