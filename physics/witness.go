// Copyright © 2024 Galvanized Logic Inc.

package physics

// witness.go implements the narrow-phase separating-plane search and its
// cache, grounded on original_source/rigid_body_core/src/simulation/
// collision_manager.rs's check_for_separating_plane. No example repo in
// the pack implements this exact algorithm (GJK/EPA and plain AABB/SAT are
// the common alternatives), so the control flow here is original work,
// written in the teacher physics package's snake_case porting idiom.

import "github.com/ironvale/rigidphys/math/lin"

// check_for_separating_plane tests, re-uses, or searches for a witness
// that proves bodies i and j are not colliding. It updates the cached
// witness in pair and returns true if one was found.
func check_for_separating_plane(i, j int, bodies []*RigidBody, pair *PairState) bool {
	switch pair.Plane.Kind {
	case PlaneFace:
		if retest_face_witness(bodies, &pair.Plane) {
			return true
		}
	case PlaneEdge:
		if retest_edge_witness(bodies, &pair.Plane) {
			return true
		}
	}

	if p, ok := search_face_witness(i, j, bodies); ok {
		pair.Plane = p
		return true
	}
	if p, ok := search_face_witness(j, i, bodies); ok {
		pair.Plane = p
		return true
	}
	if p, ok := search_edge_witness(i, j, bodies); ok {
		pair.Plane = p
		return true
	}

	pair.Plane = SeparatingPlane{Kind: PlaneNone}
	return false
}

// faceSeparates reports whether face faceIndex of faceBody has every
// vertex of otherBody strictly on its positive (outward) side.
func faceSeparates(faceBody, otherBody *RigidBody, faceIndex int) bool {
	face := faceBody.PolyhedronWorld.Faces[faceIndex]
	anchor := faceBody.PolyhedronWorld.Vertices[face.Vertices[0]]
	plane := lin.NewPlane(&anchor, &face.Normal)
	for i := range otherBody.PolyhedronWorld.Vertices {
		if plane.Dist(&otherBody.PolyhedronWorld.Vertices[i]) <= 0 {
			return false
		}
	}
	return true
}

// search_face_witness scans every face of bodies[faceBodyIdx] looking for
// one that separates it from bodies[otherBodyIdx].
func search_face_witness(faceBodyIdx, otherBodyIdx int, bodies []*RigidBody) (SeparatingPlane, bool) {
	faceBody, otherBody := bodies[faceBodyIdx], bodies[otherBodyIdx]
	for fi := range faceBody.PolyhedronWorld.Faces {
		if faceSeparates(faceBody, otherBody, fi) {
			return SeparatingPlane{
				Kind:      PlaneFace,
				FaceBody:  faceBodyIdx,
				FaceIndex: fi,
				OtherBody: otherBodyIdx,
			}, true
		}
	}
	return SeparatingPlane{}, false
}

func retest_face_witness(bodies []*RigidBody, p *SeparatingPlane) bool {
	faceBody, otherBody := bodies[p.FaceBody], bodies[p.OtherBody]
	return faceSeparates(faceBody, otherBody, p.FaceIndex)
}

// edgeWitnessDir builds the candidate separating direction for a plane
// defined by edge planeEdge (owned by planeBody) and edge otherEdge (owned
// by the other body), negated if needed so planeBody's own centroid sits
// on the non-positive side. ok is false for (near-)parallel edges.
func edgeWitnessDir(planeBody *RigidBody, planeEdgeIdx int, otherEdgeDir *lin.V3) (lin.V3, bool) {
	planeEdge := planeBody.PolyhedronWorld.Edges[planeEdgeIdx]
	dir := lin.NewV3().Cross(&planeEdge.Dir, otherEdgeDir)
	if dir.LenSqr() < lin.Epsilon*lin.Epsilon {
		return lin.V3{}, false
	}
	dir.Unit()

	anchor := planeBody.PolyhedronWorld.Vertices[planeEdge.Start]
	centroid := planeBody.PolyhedronWorld.centroid()
	toCentroid := lin.NewV3().Sub(&centroid, &anchor)
	if toCentroid.Dot(dir) > 0 {
		dir.Scale(dir, -1)
	}
	return *dir, true
}

func edgeSeparates(planeBody, otherBody *RigidBody, planeEdgeIdx, otherEdgeIdx int, dir *lin.V3) bool {
	planeEdge := planeBody.PolyhedronWorld.Edges[planeEdgeIdx]
	anchor := planeBody.PolyhedronWorld.Vertices[planeEdge.Start]
	plane := lin.NewPlane(&anchor, dir)

	for vi := range planeBody.PolyhedronWorld.Vertices {
		if vi == planeEdge.Start || vi == planeEdge.End {
			continue
		}
		if plane.Dist(&planeBody.PolyhedronWorld.Vertices[vi]) > 0 {
			return false
		}
	}
	for vi := range otherBody.PolyhedronWorld.Vertices {
		if plane.Dist(&otherBody.PolyhedronWorld.Vertices[vi]) <= 0 {
			return false
		}
	}
	return true
}

// search_edge_witness enumerates every ordered pair of edges (one from
// each body), trying each as the plane-edge in turn.
func search_edge_witness(i, j int, bodies []*RigidBody) (SeparatingPlane, bool) {
	bi, bj := bodies[i], bodies[j]
	for ei := range bi.PolyhedronWorld.Edges {
		for ej := range bj.PolyhedronWorld.Edges {
			otherDir := bj.PolyhedronWorld.Edges[ej].Dir
			if dir, ok := edgeWitnessDir(bi, ei, &otherDir); ok {
				if edgeSeparates(bi, bj, ei, ej, &dir) {
					return SeparatingPlane{
						Kind:           PlaneEdge,
						PlaneBody:      i,
						PlaneEdgeIndex: ei,
						OtherBody:      j,
						OtherEdgeIndex: ej,
					}, true
				}
			}
			selfDir := bi.PolyhedronWorld.Edges[ei].Dir
			if dir, ok := edgeWitnessDir(bj, ej, &selfDir); ok {
				if edgeSeparates(bj, bi, ej, ei, &dir) {
					return SeparatingPlane{
						Kind:           PlaneEdge,
						PlaneBody:      j,
						PlaneEdgeIndex: ej,
						OtherBody:      i,
						OtherEdgeIndex: ei,
					}, true
				}
			}
		}
	}
	return SeparatingPlane{}, false
}

func retest_edge_witness(bodies []*RigidBody, p *SeparatingPlane) bool {
	planeBody, otherBody := bodies[p.PlaneBody], bodies[p.OtherBody]
	otherDir := otherBody.PolyhedronWorld.Edges[p.OtherEdgeIndex].Dir
	dir, ok := edgeWitnessDir(planeBody, p.PlaneEdgeIndex, &otherDir)
	if !ok {
		return false
	}
	return edgeSeparates(planeBody, otherBody, p.PlaneEdgeIndex, p.OtherEdgeIndex, &dir)
}
