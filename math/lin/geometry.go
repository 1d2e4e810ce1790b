// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Geometry adds the plane, line-segment, sphere, and triangle primitives
// the physics narrow phase needs: signed distance to a plane, closest
// points between two segments, and plane-segment intersection. These
// mirror the small geometry helpers physics engines keep next to their
// vector/matrix library rather than pulling in a general computational
// geometry package.

// Plane is a plane in 3D space represented by a point on the plane and
// a unit-length outward normal. Signed distance is positive on the side
// the normal points towards.
type Plane struct {
	Point  V3 // a point on the plane.
	Normal V3 // unit length, outward facing.
}

// NewPlane returns a plane through point with the given (not necessarily
// unit length) normal direction. The normal is normalized in place.
func NewPlane(point, normal *V3) *Plane {
	p := &Plane{}
	p.Point.Set(point)
	p.Normal.Set(normal).Unit()
	return p
}

// Dist returns the signed distance from point x to the plane.
// Positive values are on the side the normal points towards.
func (p *Plane) Dist(x *V3) float64 {
	d := NewV3().Sub(x, &p.Point)
	return d.Dot(&p.Normal)
}

// Segment is a line segment between two points.
type Segment struct {
	A, B V3
}

// PlaneIntersect returns the point where segment s crosses plane p and
// true, or false if the segment lies entirely on one side (or is
// parallel to the plane).
func (s *Segment) PlaneIntersect(p *Plane) (hit V3, ok bool) {
	da := p.Dist(&s.A)
	db := p.Dist(&s.B)
	if (da > 0) == (db > 0) {
		return hit, false // both endpoints on the same side.
	}
	denom := da - db
	if AeqZ(denom) {
		return hit, false // segment parallel to the plane.
	}
	t := da / denom
	dir := NewV3().Sub(&s.B, &s.A)
	hit.Add(&s.A, dir.Scale(dir, t))
	return hit, true
}

// Sphere is a bounding sphere: a center point and radius.
type Sphere struct {
	Center V3
	Radius float64
}

// Triangle is three points in space, commonly the base data for a
// mesh-imported polyhedron face.
type Triangle struct {
	A, B, C V3
}

// Normal returns the unit length normal of the triangle using the
// right-hand rule over (B-A) x (C-A).
func (t *Triangle) Normal() V3 {
	e1 := NewV3().Sub(&t.B, &t.A)
	e2 := NewV3().Sub(&t.C, &t.A)
	n := NewV3().Cross(e1, e2)
	n.Unit()
	return *n
}

// ClosestPointOnSegment returns the point on segment s closest to x and
// the parametric value t in [0,1] along s.A -> s.B.
func ClosestPointOnSegment(x *V3, s *Segment) (closest V3, t float64) {
	ab := NewV3().Sub(&s.B, &s.A)
	lenSqr := ab.LenSqr()
	if AeqZ(lenSqr) {
		closest.Set(&s.A)
		return closest, 0
	}
	ax := NewV3().Sub(x, &s.A)
	t = Clamp(ax.Dot(ab)/lenSqr, 0, 1)
	closest.Add(&s.A, NewV3().Scale(ab, t))
	return closest, t
}

// ClosestPointsOnSegments finds the points pa on segment a and pb on
// segment b that are closest together, and the squared distance between
// them. This is the standard
// clamped-parametric closest-points-between-two-segments routine used
// for edge-edge contact generation.
func ClosestPointsOnSegments(a, b *Segment) (pa, pb V3, distSqr float64) {
	d1 := NewV3().Sub(&a.B, &a.A) // direction of segment a
	d2 := NewV3().Sub(&b.B, &b.A) // direction of segment b
	r := NewV3().Sub(&a.A, &b.A)

	aa := d1.LenSqr()
	ee := d2.LenSqr()
	f := d2.Dot(r)

	var s, t float64
	switch {
	case AeqZ(aa) && AeqZ(ee):
		// both segments degenerate to points.
		s, t = 0, 0
	case AeqZ(aa):
		s = 0
		t = Clamp(f/ee, 0, 1)
	default:
		c := d1.Dot(r)
		if AeqZ(ee) {
			t = 0
			s = Clamp(-c/aa, 0, 1)
		} else {
			b_ := d1.Dot(d2)
			denom := aa*ee - b_*b_
			if !AeqZ(denom) {
				s = Clamp((b_*f-c*ee)/denom, 0, 1)
			} else {
				s = 0
			}
			t = (b_*s + f) / ee
			if t < 0 {
				t = 0
				s = Clamp(-c/aa, 0, 1)
			} else if t > 1 {
				t = 1
				s = Clamp((b_-c)/aa, 0, 1)
			}
		}
	}

	pa.Add(&a.A, NewV3().Scale(d1, s))
	pb.Add(&b.A, NewV3().Scale(d2, t))
	diff := NewV3().Sub(&pa, &pb)
	distSqr = diff.LenSqr()
	return pa, pb, distSqr
}
