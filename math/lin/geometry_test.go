// Copyright © 2024 Galvanized Logic Inc.

package lin

import "testing"

func TestPlaneDistSignByNormalSide(t *testing.T) {
	p := NewPlane(&V3{}, &V3{Y: 1})
	if d := p.Dist(&V3{Y: 2}); !Aeq(d, 2) {
		t.Errorf("Dist above plane = %v, want 2", d)
	}
	if d := p.Dist(&V3{Y: -3}); !Aeq(d, -3) {
		t.Errorf("Dist below plane = %v, want -3", d)
	}
}

func TestSegmentPlaneIntersectCrossing(t *testing.T) {
	p := NewPlane(&V3{}, &V3{Y: 1})
	s := &Segment{A: V3{Y: -1}, B: V3{Y: 1}}
	hit, ok := s.PlaneIntersect(p)
	if !ok {
		t.Fatal("expected an intersection")
	}
	want := V3{Y: 0}
	if !hit.Aeq(&want) {
		t.Errorf("hit = %s, want %s", hit.Dump(), want.Dump())
	}
}

func TestSegmentPlaneIntersectSameSideMisses(t *testing.T) {
	p := NewPlane(&V3{}, &V3{Y: 1})
	s := &Segment{A: V3{Y: 1}, B: V3{Y: 2}}
	if _, ok := s.PlaneIntersect(p); ok {
		t.Error("expected no intersection: both endpoints on the same side")
	}
}

func TestSegmentPlaneIntersectParallelMisses(t *testing.T) {
	p := NewPlane(&V3{}, &V3{Y: 1})
	s := &Segment{A: V3{X: -1, Y: 1}, B: V3{X: 1, Y: 1}}
	if _, ok := s.PlaneIntersect(p); ok {
		t.Error("expected no intersection: segment parallel to the plane")
	}
}

func TestClosestPointOnSegmentClampsToEndpoints(t *testing.T) {
	s := &Segment{A: V3{}, B: V3{X: 10}}
	closest, tp := ClosestPointOnSegment(&V3{X: -5}, s)
	if !Aeq(tp, 0) || !closest.Aeq(&s.A) {
		t.Errorf("closest = %s, t = %v, want A, t=0", closest.Dump(), tp)
	}
	closest, tp = ClosestPointOnSegment(&V3{X: 15}, s)
	if !Aeq(tp, 1) || !closest.Aeq(&s.B) {
		t.Errorf("closest = %s, t = %v, want B, t=1", closest.Dump(), tp)
	}
	closest, tp = ClosestPointOnSegment(&V3{X: 4}, s)
	if !Aeq(tp, 0.4) {
		t.Errorf("t = %v, want 0.4", tp)
	}
	want := V3{X: 4}
	if !closest.Aeq(&want) {
		t.Errorf("closest = %s, want %s", closest.Dump(), want.Dump())
	}
}

func TestClosestPointsOnSegmentsCrossing(t *testing.T) {
	a := &Segment{A: V3{X: -1}, B: V3{X: 1}}
	b := &Segment{A: V3{Z: -1, Y: 1}, B: V3{Z: 1, Y: 1}}
	pa, pb, distSqr := ClosestPointsOnSegments(a, b)
	wantA, wantB := V3{}, V3{Y: 1}
	if !pa.Aeq(&wantA) || !pb.Aeq(&wantB) {
		t.Errorf("pa=%s pb=%s, want pa=%s pb=%s", pa.Dump(), pb.Dump(), wantA.Dump(), wantB.Dump())
	}
	if !Aeq(distSqr, 1) {
		t.Errorf("distSqr = %v, want 1", distSqr)
	}
}

// Two parallel, coplanar segments must still resolve to a definite closest
// pair rather than a NaN/degenerate result: spec's boundary behavior for
// edge-edge witness search.
func TestClosestPointsOnSegmentsParallelCoplanarIsWellDefined(t *testing.T) {
	a := &Segment{A: V3{}, B: V3{X: 1}}
	b := &Segment{A: V3{Y: 1}, B: V3{X: 1, Y: 1}}
	pa, pb, distSqr := ClosestPointsOnSegments(a, b)
	if !finite(pa) || !finite(pb) {
		t.Fatalf("expected finite closest points, got pa=%s pb=%s", pa.Dump(), pb.Dump())
	}
	if !Aeq(distSqr, 1) {
		t.Errorf("distSqr = %v, want 1", distSqr)
	}
}

func finite(v V3) bool {
	return v.X == v.X && v.Y == v.Y && v.Z == v.Z // false for NaN
}

func TestTriangleNormalRightHandRule(t *testing.T) {
	tri := &Triangle{A: V3{}, B: V3{X: 1}, C: V3{Y: 1}}
	n := tri.Normal()
	want := V3{Z: 1}
	if !n.Aeq(&want) {
		t.Errorf("Normal = %s, want %s", n.Dump(), want.Dump())
	}
}
