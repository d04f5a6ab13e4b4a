package parametric_test

import (
	"fmt"

	"honnef.co/go/parametric"
)

func ExampleSample() {
	l := parametric.Line{parametric.Pt(0, 0), parametric.Pt(4, 2)}
	for pt := range parametric.Sample(l, 5) {
		fmt.Println(pt)
	}

	// Output:
	// (0, 0)
	// (1, 0.5)
	// (2, 1)
	// (3, 1.5)
	// (4, 2)
}

func ExampleByTurns() {
	c := parametric.ByTurns(parametric.Circle{Center: parametric.Pt(0, 0), Radius: 2})
	fmt.Println(c.Eval(0))
	fmt.Println(c.IsClosed())

	// Output:
	// (2, 0)
	// true
}

func ExampleEvalPolar() {
	c := parametric.Cardioid{A: 1}
	for _, th := range []parametric.Angle{
		parametric.Turns(0),
		parametric.Turns(0.25),
		parametric.Turns(0.5),
		parametric.Turns(0.75),
	} {
		fmt.Printf("%.1f\n", parametric.EvalPolar(c, th).Radius)
	}

	// Output:
	// 2.0
	// 1.0
	// 0.0
	// 1.0
}

func ExampleToPolyline() {
	// Flatten a Bézier arch and draw it as an SVG document.
	q := parametric.QuadBez{parametric.Pt(0, 0), parametric.Pt(2, 4), parametric.Pt(4, 0)}
	p := parametric.ToPolyline(q, 5)

	fmt.Println(`<svg viewBox="0 0 4 2" xmlns="http://www.w3.org/2000/svg">`)
	fmt.Print(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%g,%g", pt.X, pt.Y)
	}
	fmt.Println(`" fill="none" stroke="black" stroke-width="0.1" />`)
	fmt.Println(`</svg>`)

	// Output:
	// <svg viewBox="0 0 4 2" xmlns="http://www.w3.org/2000/svg">
	// <polyline points="0,0 1,1.5 2,2 3,1.5 4,0" fill="none" stroke="black" stroke-width="0.1" />
	// </svg>
}

func ExampleStaircaseFloor() {
	for _, x := range []float64{0.1, 0.37, 0.5, 0.9} {
		fmt.Println(parametric.StaircaseFloor(x, 4))
	}

	// Output:
	// 0
	// 0.25
	// 0.5
	// 0.75
}
