package parametric

// Epitrochoid is the curve traced by a point attached to a circle of radius
// RollingRadius rolling around the outside of a fixed circle of radius
// FixedRadius, where the point is Distance away from the rolling circle's
// center.
type Epitrochoid struct {
	FixedRadius   float64
	RollingRadius float64
	Distance      float64
}

var _ AngularCurve = Epitrochoid{}

func (e Epitrochoid) EvalAngle(th Angle) Point {
	sum := e.FixedRadius + e.RollingRadius
	sin, cos := th.Sincos()
	sink, cosk := th.Mul(sum / e.RollingRadius).Sincos()
	return Point{
		X: sum*cos - e.Distance*cosk,
		Y: sum*sin - e.Distance*sink,
	}
}

func (e Epitrochoid) IsClosed() bool { return true }

// Hypotrochoid is the curve traced by a point attached to a circle of radius
// RollingRadius rolling around the inside of a fixed circle of radius
// FixedRadius, where the point is Distance away from the rolling circle's
// center.
type Hypotrochoid struct {
	FixedRadius   float64
	RollingRadius float64
	Distance      float64
}

var _ AngularCurve = Hypotrochoid{}

func (h Hypotrochoid) EvalAngle(th Angle) Point {
	diff := h.FixedRadius - h.RollingRadius
	sin, cos := th.Sincos()
	sink, cosk := th.Mul(diff / h.RollingRadius).Sincos()
	return Point{
		X: diff*cos + h.Distance*cosk,
		Y: diff*sin - h.Distance*sink,
	}
}

func (h Hypotrochoid) IsClosed() bool { return true }

// Epicycloid is the curve traced by a point on the rim of a circle of radius
// RollingRadius rolling around the outside of a fixed circle of radius
// FixedRadius. It is the special case of [Epitrochoid] with the traced point
// on the rim.
type Epicycloid struct {
	FixedRadius   float64
	RollingRadius float64
}

var _ AngularCurve = Epicycloid{}

func (e Epicycloid) EvalAngle(th Angle) Point {
	return Epitrochoid{e.FixedRadius, e.RollingRadius, e.RollingRadius}.EvalAngle(th)
}

func (e Epicycloid) IsClosed() bool { return true }

// Hypocycloid is the curve traced by a point on the rim of a circle of
// radius RollingRadius rolling around the inside of a fixed circle of radius
// FixedRadius. It is the special case of [Hypotrochoid] with the traced
// point on the rim.
type Hypocycloid struct {
	FixedRadius   float64
	RollingRadius float64
}

var _ AngularCurve = Hypocycloid{}

func (h Hypocycloid) EvalAngle(th Angle) Point {
	return Hypotrochoid{h.FixedRadius, h.RollingRadius, h.RollingRadius}.EvalAngle(th)
}

func (h Hypocycloid) IsClosed() bool { return true }

// NewAstroid returns the four-cusped hypocycloid inscribed in a circle of
// radius r.
func NewAstroid(r float64) Hypocycloid {
	return Hypocycloid{FixedRadius: r, RollingRadius: r / 4}
}

// NewDeltoid returns the three-cusped hypocycloid inscribed in a circle of
// radius r.
func NewDeltoid(r float64) Hypocycloid {
	return Hypocycloid{FixedRadius: r, RollingRadius: r / 3}
}

// NewCardioidCurve returns the cardioid traced by rolling a circle of radius
// r around a fixed circle of the same radius. For the polar form, see
// [Cardioid].
func NewCardioidCurve(r float64) Epicycloid {
	return Epicycloid{FixedRadius: r, RollingRadius: r}
}

// NewNephroid returns the two-cusped epicycloid rolled around a fixed circle
// of radius r.
func NewNephroid(r float64) Epicycloid {
	return Epicycloid{FixedRadius: r, RollingRadius: r / 2}
}

// Cycloid is the curve traced by a point on the rim of a wheel of the given
// radius rolling along the x axis. The angle parameter is the wheel's
// rotation, so unlike the rolling-circle curves above one turn does not
// return to the start.
type Cycloid struct {
	Radius float64
}

var _ AngularCurve = Cycloid{}

func (c Cycloid) EvalAngle(th Angle) Point {
	sin, cos := th.Sincos()
	return Point{
		X: c.Radius * (th.Radians() - sin),
		Y: c.Radius * (1 - cos),
	}
}

func (c Cycloid) IsClosed() bool { return false }
