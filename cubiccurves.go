package parametric

// TschirnhausenCubic is the cubic plane curve with polar equation
// r = A·sec³(θ/3). The radius grows without bound as θ/3 approaches a
// quarter turn.
type TschirnhausenCubic struct {
	A float64
}

var _ PolarCurve = TschirnhausenCubic{}

func (c TschirnhausenCubic) Radius(th Angle) float64 {
	s := th.Div(3).Sec()
	return c.A * s * s * s
}

func (c TschirnhausenCubic) IsClosed() bool { return false }

// TrisectrixOfMaclaurin is the cubic plane curve with polar equation
// r = A(4 cos θ − sec θ), used by Maclaurin for angle trisection. The sec θ
// term diverges at quarter turns; the resulting infinities propagate.
type TrisectrixOfMaclaurin struct {
	A float64
}

var _ PolarCurve = TrisectrixOfMaclaurin{}

func (c TrisectrixOfMaclaurin) Radius(th Angle) float64 {
	return c.A * (4*th.Cos() - th.Sec())
}

func (c TrisectrixOfMaclaurin) IsClosed() bool { return false }

// ConchoidOfDeSluze is the family of cubic plane curves with polar equation
// r = sec θ + A cos θ. The sec θ term diverges at quarter turns; the
// resulting infinities propagate.
type ConchoidOfDeSluze struct {
	A float64
}

var _ PolarCurve = ConchoidOfDeSluze{}

func (c ConchoidOfDeSluze) Radius(th Angle) float64 {
	return th.Sec() + c.A*th.Cos()
}

func (c ConchoidOfDeSluze) IsClosed() bool { return false }
