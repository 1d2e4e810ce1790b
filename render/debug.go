// Copyright © 2024 Galvanized Logic Inc.

package render

// debug.go extracts witness faces/edges and contact points from a
// Renderable's collision table into plain data a debug overlay can draw,
// without the render package needing to know the narrow-phase algorithm.

import (
	"github.com/ironvale/rigidphys/math/lin"
	"github.com/ironvale/rigidphys/physics"
)

// WitnessFace names a face of one body currently cached as a separating
// witness.
type WitnessFace struct {
	BodyIndex, FaceIndex int
}

// WitnessEdge names an edge of one body currently cached as half of an
// edge-edge separating witness.
type WitnessEdge struct {
	BodyIndex, EdgeIndex int
}

// ContactPoint is one resolved contact's world-space position and normal.
type ContactPoint struct {
	Position lin.V3
	Normal   lin.V3
}

// PairDebug is the overlay data for one body pair.
type PairDebug struct {
	BodyA, BodyB int
	Colliding    bool

	Face  *WitnessFace
	EdgeA *WitnessEdge
	EdgeB *WitnessEdge

	Contacts []ContactPoint
}

// BodyAxes is one body's world-space orientation basis, for drawing an
// axis gizmo at its pose.
type BodyAxes struct {
	Right, Up, Forward lin.V3
}

// DebugOverlay is every AABB-overlapping pair's witness/contact data for
// one frame, plus every body's orientation axes.
type DebugOverlay struct {
	Pairs []PairDebug
	Axes  []BodyAxes
}

// BuildDebugOverlay walks every pair in r's collision table and extracts
// its cached witness and, if colliding, its contact points, then derives
// each body's world-space axis gizmo from its orientation.
func BuildDebugOverlay(r Renderable) *DebugOverlay {
	bodies := r.Bodies()
	overlay := &DebugOverlay{Axes: make([]BodyAxes, len(bodies))}
	for i, b := range bodies {
		overlay.Axes[i] = bodyAxes(b)
	}

	table := r.CollisionTable()
	if table == nil {
		return overlay
	}
	n := table.NumBodies()
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			pair := table.Pair(i, j)
			if !pair.AabbOverlap() {
				continue
			}
			overlay.Pairs = append(overlay.Pairs, pairDebug(i, j, pair, bodies))
		}
	}
	return overlay
}

// bodyAxes derives b's world-space right/up/forward directions from its
// orientation quaternion.
func bodyAxes(b *physics.RigidBody) BodyAxes {
	q := &b.OrientationQuaternion
	return BodyAxes{
		Right:   *lin.NewV3().Right(q),
		Up:      *lin.NewV3().Up(q),
		Forward: *lin.NewV3().Forward(q),
	}
}

func pairDebug(i, j int, pair *physics.PairState, bodies []*physics.RigidBody) PairDebug {
	d := PairDebug{BodyA: i, BodyB: j, Colliding: pair.Colliding}

	switch pair.Plane.Kind {
	case physics.PlaneFace:
		d.Face = &WitnessFace{BodyIndex: pair.Plane.FaceBody, FaceIndex: pair.Plane.FaceIndex}
	case physics.PlaneEdge:
		d.EdgeA = &WitnessEdge{BodyIndex: pair.Plane.PlaneBody, EdgeIndex: pair.Plane.PlaneEdgeIndex}
		d.EdgeB = &WitnessEdge{BodyIndex: pair.Plane.OtherBody, EdgeIndex: pair.Plane.OtherEdgeIndex}
	}

	if !pair.Colliding {
		return d
	}
	d.Contacts = make([]ContactPoint, 0, len(pair.Contacts))
	for k := range pair.Contacts {
		d.Contacts = append(d.Contacts, contactPoint(&pair.Contacts[k], bodies))
	}
	return d
}

// contactPoint resolves a Contact to a world-space position and normal.
// Edge-edge contacts already carry both; vertex-face contacts store only
// indices, so the vertex position and face normal are looked up here.
func contactPoint(c *physics.Contact, bodies []*physics.RigidBody) ContactPoint {
	if c.Kind == physics.ContactEdgeEdge {
		return ContactPoint{Position: c.ContactPosition, Normal: c.PlaneDirection}
	}
	vertexBody := bodies[c.VertexBody]
	faceBody := bodies[c.FaceBody]
	return ContactPoint{
		Position: vertexBody.PolyhedronWorld.Vertices[c.VertexIndex],
		Normal:   faceBody.PolyhedronWorld.Faces[c.FaceIndex].Normal,
	}
}
