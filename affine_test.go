package parametric

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(Radians(math.Pi/2))), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Rotate(Turns(0.25))), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Pt(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Pt(11, 16), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestAffineRotateAbout(t *testing.T) {
	const epsilon = 1e-9
	center := Pt(1, 1)
	aff := RotateAbout(Turns(0.25), center)
	assertNear(t, center.Transform(aff), center, epsilon)
	assertNear(t, Pt(2, 1).Transform(aff), Pt(1, 2), epsilon)
}

func TestAffineTransformSeq(t *testing.T) {
	const epsilon = 1e-9
	line := Line{Pt(0, 0), Pt(1, 0)}
	var got []Point
	for pt := range Transform(Sample(line, 3), Translate(Pt(0, 2))) {
		got = append(got, pt)
	}
	want := []Point{Pt(0, 2), Pt(0.5, 2), Pt(1, 2)}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		assertNear(t, got[i], want[i], epsilon)
	}
}
