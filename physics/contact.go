// Copyright © 2024 Galvanized Logic Inc.

package physics

// contact.go enumerates vertex-face and edge-edge contacts from a cached
// separating plane, grounded on
// original_source/rigid_body_core/src/simulation/collision_manager.rs's
// generate_contacts and the clamped closest-point formula in math/geometry.rs.

import (
	"math"

	"github.com/ironvale/rigidphys/math/lin"
)

type ContactKind int

const (
	ContactVertexFace ContactKind = iota
	ContactEdgeEdge
)

// Contact is a tagged union: VertexFace{VertexBody,VertexIndex,FaceBody,
// FaceIndex} or EdgeEdge{PlaneBody,PlaneEdgeIndex,OtherBody,OtherEdgeIndex,
// ContactPosition,PlaneDirection}.
type Contact struct {
	Kind ContactKind

	VertexBody  int
	VertexIndex int
	FaceBody    int
	FaceIndex   int

	PlaneBody      int
	PlaneEdgeIndex int
	OtherBody      int
	OtherEdgeIndex int

	ContactPosition lin.V3
	PlaneDirection  lin.V3
}

// planeGeometry reduces either kind of SeparatingPlane to a uniform
// (plane-body index, other-body index, anchor point, plane direction)
// so the rest of the enumeration code doesn't need to branch on Kind.
func planeGeometry(p *SeparatingPlane, bodies []*RigidBody) (planeBodyIdx, otherBodyIdx int, anchor, dir lin.V3, ok bool) {
	switch p.Kind {
	case PlaneFace:
		body := bodies[p.FaceBody]
		face := body.PolyhedronWorld.Faces[p.FaceIndex]
		return p.FaceBody, p.OtherBody, body.PolyhedronWorld.Vertices[face.Vertices[0]], face.Normal, true
	case PlaneEdge:
		body := bodies[p.PlaneBody]
		edge := body.PolyhedronWorld.Edges[p.PlaneEdgeIndex]
		otherEdge := bodies[p.OtherBody].PolyhedronWorld.Edges[p.OtherEdgeIndex]
		d, edgeOk := edgeWitnessDir(body, p.PlaneEdgeIndex, &otherEdge.Dir)
		if !edgeOk {
			return 0, 0, lin.V3{}, lin.V3{}, false
		}
		return p.PlaneBody, p.OtherBody, body.PolyhedronWorld.Vertices[edge.Start], d, true
	}
	return 0, 0, lin.V3{}, lin.V3{}, false
}

func vertexInsideFacePrism(body *RigidBody, faceIndex int, v *lin.V3) bool {
	for _, plane := range body.PolyhedronWorld.EnclosingPlanes(faceIndex) {
		if plane.Dist(v) >= 0 {
			return false
		}
	}
	return true
}

func facePlaneDist(body *RigidBody, faceIndex int, v *lin.V3) float64 {
	face := body.PolyhedronWorld.Faces[faceIndex]
	anchor := body.PolyhedronWorld.Vertices[face.Vertices[0]]
	plane := lin.NewPlane(&anchor, &face.Normal)
	return plane.Dist(v)
}

// enumerate_vertex_face_contacts finds plane-body vertices coincident with
// the separating plane and, for each, the other body's face it rests on.
func enumerate_vertex_face_contacts(planeBodyIdx, otherBodyIdx int, anchor, dir lin.V3, bodies []*RigidBody, out *[]Contact) {
	planeBody, otherBody := bodies[planeBodyIdx], bodies[otherBodyIdx]
	plane := lin.NewPlane(&anchor, &dir)
	for vi := range planeBody.PolyhedronWorld.Vertices {
		v := planeBody.PolyhedronWorld.Vertices[vi]
		if math.Abs(plane.Dist(&v)) > CollisionEpsilon {
			continue
		}
		for fi := range otherBody.PolyhedronWorld.Faces {
			if !vertexInsideFacePrism(otherBody, fi, &v) {
				continue
			}
			d := facePlaneDist(otherBody, fi, &v)
			if d > 0 && d <= CollisionEpsilon {
				*out = append(*out, Contact{
					Kind: ContactVertexFace, VertexBody: planeBodyIdx, VertexIndex: vi,
					FaceBody: otherBodyIdx, FaceIndex: fi,
				})
				break
			}
		}
	}
}

// edgeEdgePlaneDirection picks the contact normal for an edge-edge pair:
// the unit cross product of the two edge directions, negated so the other
// body's centroid lies on the positive side of the plane-body's edge
// start; falls back to the plane-body's own edge direction when the edges
// are (near-)parallel.
func edgeEdgePlaneDirection(planeEdgeDir, otherEdgeDir *lin.V3, planeEdgeStart lin.V3, otherCentroid lin.V3) lin.V3 {
	cross := lin.NewV3().Cross(planeEdgeDir, otherEdgeDir)
	if cross.LenSqr() < lin.Epsilon*lin.Epsilon {
		return *planeEdgeDir
	}
	cross.Unit()
	toCentroid := lin.NewV3().Sub(&otherCentroid, &planeEdgeStart)
	if toCentroid.Dot(cross) < 0 {
		cross.Scale(cross, -1)
	}
	return *cross
}

// enumerate_edge_edge_contacts finds plane-body edges with an endpoint
// coincident with the separating plane and pairs each against every edge
// of the other body via the clamped closest-points formula.
func enumerate_edge_edge_contacts(planeBodyIdx, otherBodyIdx int, anchor, dir lin.V3, bodies []*RigidBody, out *[]Contact) {
	planeBody, otherBody := bodies[planeBodyIdx], bodies[otherBodyIdx]
	plane := lin.NewPlane(&anchor, &dir)
	otherCentroid := otherBody.PolyhedronWorld.centroid()

	for ei, e := range planeBody.PolyhedronWorld.Edges {
		start := planeBody.PolyhedronWorld.Vertices[e.Start]
		end := planeBody.PolyhedronWorld.Vertices[e.End]
		if math.Abs(plane.Dist(&start)) > CollisionEpsilon && math.Abs(plane.Dist(&end)) > CollisionEpsilon {
			continue
		}
		segA := lin.Segment{A: start, B: end}
		for ej, oe := range otherBody.PolyhedronWorld.Edges {
			oStart := otherBody.PolyhedronWorld.Vertices[oe.Start]
			oEnd := otherBody.PolyhedronWorld.Vertices[oe.End]
			segB := lin.Segment{A: oStart, B: oEnd}
			pa, pb, distSqr := lin.ClosestPointsOnSegments(&segA, &segB)
			if distSqr > CollisionEpsilon*CollisionEpsilon {
				continue
			}
			pos := lin.NewV3().Add(&pa, &pb)
			pos.Scale(pos, 0.5)
			planeDir := edgeEdgePlaneDirection(&e.Dir, &oe.Dir, start, otherCentroid)
			*out = append(*out, Contact{
				Kind: ContactEdgeEdge, PlaneBody: planeBodyIdx, PlaneEdgeIndex: ei,
				OtherBody: otherBodyIdx, OtherEdgeIndex: ej,
				ContactPosition: *pos, PlaneDirection: planeDir,
			})
		}
	}
}

// enumerate_contacts fills pair.Contacts from a freshly cached separating
// plane. Called only after interpenetration has been bisected away.
func enumerate_contacts(plane *SeparatingPlane, bodies []*RigidBody) []Contact {
	planeBodyIdx, otherBodyIdx, anchor, dir, ok := planeGeometry(plane, bodies)
	if !ok {
		return nil
	}
	contacts := []Contact{}
	enumerate_vertex_face_contacts(planeBodyIdx, otherBodyIdx, anchor, dir, bodies, &contacts)
	enumerate_edge_edge_contacts(planeBodyIdx, otherBodyIdx, anchor, dir, bodies, &contacts)
	return contacts
}

// measure_minimum_separation runs the same vertex/face and edge/edge
// sweeps used by enumerate_contacts but, instead of emitting contacts,
// returns the smallest strictly-positive separation found. Used by
// bisection to decide when interpenetration recovery has converged.
func measure_minimum_separation(plane *SeparatingPlane, bodies []*RigidBody) (float64, bool) {
	planeBodyIdx, otherBodyIdx, _, _, ok := planeGeometry(plane, bodies)
	if !ok {
		return 0, false
	}
	planeBody, otherBody := bodies[planeBodyIdx], bodies[otherBodyIdx]

	min := math.Inf(1)
	found := false
	consider := func(d float64) {
		if d > 0 && d < min {
			min = d
			found = true
		}
	}

	for vi := range planeBody.PolyhedronWorld.Vertices {
		v := planeBody.PolyhedronWorld.Vertices[vi]
		for fi := range otherBody.PolyhedronWorld.Faces {
			if vertexInsideFacePrism(otherBody, fi, &v) {
				consider(facePlaneDist(otherBody, fi, &v))
			}
		}
	}

	for _, e := range planeBody.PolyhedronWorld.Edges {
		start := planeBody.PolyhedronWorld.Vertices[e.Start]
		end := planeBody.PolyhedronWorld.Vertices[e.End]
		segA := lin.Segment{A: start, B: end}
		for _, oe := range otherBody.PolyhedronWorld.Edges {
			oStart := otherBody.PolyhedronWorld.Vertices[oe.Start]
			oEnd := otherBody.PolyhedronWorld.Vertices[oe.End]
			segB := lin.Segment{A: oStart, B: oEnd}
			_, _, distSqr := lin.ClosestPointsOnSegments(&segA, &segB)
			consider(math.Sqrt(distSqr))
		}
	}
	return min, found
}
