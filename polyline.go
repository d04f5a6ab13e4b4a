package parametric

import "slices"

// Polyline is a piecewise-linear approximation of a planar curve. When
// Closed is set, the last point connects back to the first; the closing
// segment is implied, not stored.
type Polyline struct {
	Points []Point
	Closed bool
}

// Polyline3 is a piecewise-linear approximation of a spatial curve. See
// [Polyline].
type Polyline3 struct {
	Points []Point3
	Closed bool
}

// ToPolyline approximates the curve with n evenly spaced samples, taken
// exactly as by [Sample]. The result is marked closed when the curve is.
func ToPolyline(c PlanarCurve, n int) Polyline {
	return Polyline{
		Points: slices.Collect(Sample(c, n)),
		Closed: c.IsClosed(),
	}
}

// ToPolyline3 approximates the curve with n evenly spaced samples, taken
// exactly as by [Sample3]. The result is marked closed when the curve is.
func ToPolyline3(c SpatialCurve, n int) Polyline3 {
	return Polyline3{
		Points: slices.Collect(Sample3(c, n)),
		Closed: c.IsClosed(),
	}
}

// Length returns the total length of the polyline's segments, including the
// implied closing segment when the polyline is closed.
func (p Polyline) Length() float64 {
	if len(p.Points) < 2 {
		return 0
	}
	var length float64
	for i := 1; i < len(p.Points); i++ {
		length += p.Points[i-1].Distance(p.Points[i])
	}
	if p.Closed {
		length += p.Points[len(p.Points)-1].Distance(p.Points[0])
	}
	return length
}

// Length returns the total length of the polyline's segments, including the
// implied closing segment when the polyline is closed.
func (p Polyline3) Length() float64 {
	if len(p.Points) < 2 {
		return 0
	}
	var length float64
	for i := 1; i < len(p.Points); i++ {
		length += p.Points[i-1].Distance(p.Points[i])
	}
	if p.Closed {
		length += p.Points[len(p.Points)-1].Distance(p.Points[0])
	}
	return length
}

// BoundingBox returns the smallest rectangle enclosing the polyline's
// points. The zero rectangle is returned for an empty polyline.
func (p Polyline) BoundingBox() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p.Points[0], p.Points[0])
	for _, pt := range p.Points[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// BoundingBox returns the smallest box enclosing the polyline's points. The
// zero box is returned for an empty polyline.
func (p Polyline3) BoundingBox() Box3 {
	if len(p.Points) == 0 {
		return Box3{}
	}
	bbox := NewBox3FromPoints(p.Points[0], p.Points[0])
	for _, pt := range p.Points[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Transform returns a new polyline with every point transformed by aff. The
// receiver is unchanged.
func (p Polyline) Transform(aff Affine) Polyline {
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.Transform(aff)
	}
	return Polyline{
		Points: pts,
		Closed: p.Closed,
	}
}
