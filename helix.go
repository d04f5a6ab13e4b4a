package parametric

// Helix is a circular helix around the z axis. Pitch is the axial rise per
// full turn. The helix never rejoins itself, so the family is tagged open
// even though its shadow on the xy plane is a circle.
type Helix struct {
	Radius float64
	Pitch  float64
}

var _ AngularCurve3 = Helix{}

func (h Helix) EvalAngle(th Angle) Point3 {
	sin, cos := th.Sincos()
	return Point3{
		X: h.Radius * cos,
		Y: h.Radius * sin,
		Z: h.Pitch * th.Turns(),
	}
}

func (h Helix) IsClosed() bool { return false }
