// Copyright © 2024 Galvanized Logic Inc.

package physics

// impulse.go applies the pairwise instantaneous impulse that resolves one
// contact, grounded on the momentum/velocity update chain in
// original_source/rigid_body_core/src/simulation/collision_manager.rs and
// the teacher physics package's body.go update-after-solve staging.

import "github.com/ironvale/rigidphys/math/lin"

const coefficientOfRestitution = 1.0

// contactPointAndNormal reduces a Contact to a world-space contact point,
// outward normal, and the two bodies it applies to: A owns the point in
// the vertex-face case (or is the "other" body in edge-edge); B owns the
// normal/plane.
func contactPointAndNormal(c *Contact, bodies []*RigidBody) (a, bIdx int, point, normal lin.V3) {
	switch c.Kind {
	case ContactVertexFace:
		vertexBody := bodies[c.VertexBody]
		point = vertexBody.PolyhedronWorld.Vertices[c.VertexIndex]
		normal = bodies[c.FaceBody].PolyhedronWorld.Faces[c.FaceIndex].Normal
		return c.VertexBody, c.FaceBody, point, normal
	default: // ContactEdgeEdge
		return c.OtherBody, c.PlaneBody, c.ContactPosition, c.PlaneDirection
	}
}

// apply_impulse resolves one contact between the two named bodies, if
// they are approaching along the normal. Separating pairs (v_rel >= 0)
// are left untouched; that's the normal "already separating" signal, not
// an error.
func apply_impulse(c *Contact, bodies []*RigidBody) {
	aIdx, bIdx, p, n := contactPointAndNormal(c, bodies)
	a, b := bodies[aIdx], bodies[bIdx]

	rA := lin.NewV3().Sub(&p, &a.Position)
	rB := lin.NewV3().Sub(&p, &b.Position)

	vA := lin.NewV3().Cross(&a.AngularVelocity, rA)
	vA.Add(vA, &a.LinearVelocity)
	vB := lin.NewV3().Cross(&b.AngularVelocity, rB)
	vB.Add(vB, &b.LinearVelocity)

	relVel := lin.NewV3().Sub(vA, vB)
	vRel := relVel.Dot(&n)
	if vRel >= 0 {
		return
	}

	rAxn := lin.NewV3().Cross(rA, &n)
	angTermA := lin.NewV3().MultMv(&a.InertiaWorldInverse, rAxn)
	angTermA.Cross(angTermA, rA)

	rBxn := lin.NewV3().Cross(rB, &n)
	angTermB := lin.NewV3().MultMv(&b.InertiaWorldInverse, rBxn)
	angTermB.Cross(angTermB, rB)

	denom := a.MassInverse + b.MassInverse + angTermA.Dot(&n) + angTermB.Dot(&n)
	if denom == 0 {
		return
	}
	j := -(1 + coefficientOfRestitution) * vRel / denom

	impulse := lin.NewV3().Scale(&n, j)
	if a.movable() {
		a.LinearMomentum.Add(&a.LinearMomentum, impulse)
		torqueA := lin.NewV3().Cross(rA, impulse)
		a.AngularMomentum.Add(&a.AngularMomentum, torqueA)
		a.update_velocity()
		a.update_angular_velocity()
	}
	if b.movable() {
		negImpulse := lin.NewV3().Scale(&n, -j)
		b.LinearMomentum.Add(&b.LinearMomentum, negImpulse)
		torqueB := lin.NewV3().Cross(rB, negImpulse)
		b.AngularMomentum.Add(&b.AngularMomentum, torqueB)
		b.update_velocity()
		b.update_angular_velocity()
	}
}
