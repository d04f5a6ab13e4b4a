package parametric

import (
	"math"
	"testing"
)

func TestEpitrochoidEvalAngle(t *testing.T) {
	e := Epitrochoid{FixedRadius: 2, RollingRadius: 1, Distance: 0.5}
	if got := e.EvalAngle(Turns(0)); got != Pt(2.5, 0) {
		t.Errorf("got %v at zero turns, want (2.5, 0)", got)
	}
	assertNear(t, Pt(-2.5, 0), e.EvalAngle(Turns(0.5)), 1e-12)
	if !e.IsClosed() {
		t.Error("an epitrochoid is closed")
	}
}

func TestHypotrochoidEvalAngle(t *testing.T) {
	h := Hypotrochoid{FixedRadius: 5, RollingRadius: 3, Distance: 5}
	if got := h.EvalAngle(Turns(0)); got != Pt(7, 0) {
		t.Errorf("got %v at zero turns, want (7, 0)", got)
	}
	if !h.IsClosed() {
		t.Error("a hypotrochoid is closed")
	}
}

func TestEpicycloidOnRim(t *testing.T) {
	// An epicycloid is the epitrochoid with the traced point on the rim.
	e := Epicycloid{FixedRadius: 3, RollingRadius: 1}
	et := Epitrochoid{FixedRadius: 3, RollingRadius: 1, Distance: 1}
	for i := range 17 {
		th := Turns(float64(i) / 16)
		got, want := e.EvalAngle(th), et.EvalAngle(th)
		if !identical(got, want) {
			t.Errorf("got %v, want %v at %v turns", got, want, th.Turns())
		}
	}
}

func TestHypocycloidOnRim(t *testing.T) {
	// A hypocycloid is the hypotrochoid with the traced point on the rim.
	h := Hypocycloid{FixedRadius: 4, RollingRadius: 1}
	ht := Hypotrochoid{FixedRadius: 4, RollingRadius: 1, Distance: 1}
	for i := range 17 {
		th := Turns(float64(i) / 16)
		got, want := h.EvalAngle(th), ht.EvalAngle(th)
		if !identical(got, want) {
			t.Errorf("got %v, want %v at %v turns", got, want, th.Turns())
		}
	}
}

func TestAstroid(t *testing.T) {
	// The four-cusped hypocycloid is (r cos^3, r sin^3).
	const r = 2.0
	a := NewAstroid(r)
	diff(t, Hypocycloid{FixedRadius: 2, RollingRadius: 0.5}, a)
	for i := range 17 {
		th := Turns(float64(i) / 16)
		sin, cos := th.Sincos()
		want := Pt(r*cos*cos*cos, r*sin*sin*sin)
		assertNear(t, want, a.EvalAngle(th), 1e-12)
	}
}

func TestDerivedTrochoids(t *testing.T) {
	diff(t, Hypocycloid{FixedRadius: 6, RollingRadius: 2}, NewDeltoid(6))
	diff(t, Epicycloid{FixedRadius: 3, RollingRadius: 3}, NewCardioidCurve(3))
	diff(t, Epicycloid{FixedRadius: 4, RollingRadius: 2}, NewNephroid(4))

	// The epicycloid over equal radii has its cusp on the fixed circle.
	if got := NewCardioidCurve(3).EvalAngle(Turns(0)); got != Pt(3, 0) {
		t.Errorf("got %v at zero turns, want (3, 0)", got)
	}
}

func TestCycloid(t *testing.T) {
	c := Cycloid{Radius: 1}
	if got := c.EvalAngle(Turns(0)); got != Pt(0, 0) {
		t.Errorf("got %v at zero turns, want (0, 0)", got)
	}
	// The rim point peaks at half a rotation and returns to the ground
	// after a full one, a wheel-circumference further along.
	assertNear(t, Pt(math.Pi, 2), c.EvalAngle(Turns(0.5)), 1e-12)
	assertNear(t, Pt(2*math.Pi, 0), c.EvalAngle(Turns(1)), 1e-12)
	if c.IsClosed() {
		t.Error("a cycloid is not closed")
	}

	scaled := Cycloid{Radius: 3}
	assertNear(t, Pt(3*math.Pi, 6), scaled.EvalAngle(Turns(0.5)), 1e-12)
}
