package parametric

import "iter"

// Sample returns an iterator over n evenly spaced samples of the curve,
// covering the parameter range [0, 1] inclusive. The parameter values are
// i/(n-1) for i in [0, n), so the first and last samples are exactly
// Eval(0) and Eval(1). For n == 1 the single sample is taken at t = 0, and
// for n <= 0 the sequence is empty.
//
// The sequence is restartable; ranging over it a second time evaluates the
// curve again.
func Sample(c PlanarCurve, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n == 1 {
			yield(c.Eval(0))
			return
		}
		for i := range n {
			if !yield(c.Eval(float64(i) / float64(n-1))) {
				return
			}
		}
	}
}

// Sample3 returns an iterator over n evenly spaced samples of the curve. It
// parametrizes identically to [Sample].
func Sample3(c SpatialCurve, n int) iter.Seq[Point3] {
	return func(yield func(Point3) bool) {
		if n == 1 {
			yield(c.Eval(0))
			return
		}
		for i := range n {
			if !yield(c.Eval(float64(i) / float64(n-1))) {
				return
			}
		}
	}
}
