package parametric

import (
	"fmt"
	"math"
)

// Size is a 2D extent, a width and a height.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Splat returns the size's width and height.
func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

func (sz Size) MaxSide() float64 {
	return max(sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

func (sz Size) Area() float64 {
	return sz.Width * sz.Height
}

// AspectRatio returns the height divided by the width. A zero width yields
// the usual IEEE-754 results.
func (sz Size) AspectRatio() float64 {
	return sz.Height / sz.Width
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
