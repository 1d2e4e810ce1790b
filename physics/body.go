// Copyright © 2024 Galvanized Logic Inc.

package physics

// body.go implements the rigid body: immutable body-frame geometry and
// inertia, mutable world pose and momenta, and the derived quantities the
// integrator and narrow phase read each tick. Update-function names mirror
// original_source/rigid_body_core/src/simulation/rigid_body.rs.

import (
	"math"

	"github.com/ironvale/rigidphys/math/lin"
)

// RigidBody is one convex polyhedron participating in the simulation.
type RigidBody struct {
	UID UID

	// Constant after construction.
	MassInverse        float64
	InertiaBody        lin.M3
	InertiaBodyInverse lin.M3
	PolyhedronBody      *Polyhedron

	// Mutable pose.
	Position             lin.V3
	OrientationQuaternion lin.Q
	RotationMatrix        lin.M3
	InertiaWorld          lin.M3
	InertiaWorldInverse   lin.M3

	// Mutable momenta.
	LinearMomentum  lin.V3
	AngularMomentum lin.V3
	LinearVelocity  lin.V3
	AngularVelocity lin.V3

	// Derived geometry.
	PolyhedronWorld *Polyhedron
	Aabb            Abox

	// Per-frame transient, cleared after each tick.
	Force  lin.V3
	Torque lin.V3
}

// Abox is an axis-aligned bounding box: component-wise min/max over a
// body's world-frame vertices.
type Abox struct {
	Min, Max lin.V3
}

// Overlaps returns true if a and b's boxes intersect, including when they
// merely touch along a face, edge, or point (so that a just-closed gap still
// registers as an overlap for broad-phase bookkeeping).
func (a *Abox) Overlaps(b *Abox) bool {
	return a.Max.X >= b.Min.X && a.Min.X <= b.Max.X &&
		a.Max.Y >= b.Min.Y && a.Min.Y <= b.Max.Y &&
		a.Max.Z >= b.Min.Z && a.Min.Z <= b.Max.Z
}

// NewRigidBody constructs a movable or immovable body from body-frame
// geometry, inverse mass (0 for immovable), inverse inertia tensor, initial
// position/orientation, and initial momenta.
func NewRigidBody(polyBody *Polyhedron, massInverse float64, inertiaBodyInverse lin.M3,
	position lin.V3, rotation lin.M3, linearMomentum, angularMomentum lin.V3) (*RigidBody, error) {

	b := &RigidBody{
		UID:                   nextUID(),
		MassInverse:           massInverse,
		InertiaBodyInverse:    inertiaBodyInverse,
		PolyhedronBody:        polyBody,
		Position:              position,
		LinearMomentum:        linearMomentum,
		AngularMomentum:       angularMomentum,
	}

	if massInverse != 0 {
		inv := lin.NewM3().Set(&inertiaBodyInverse)
		if math.Abs(inv.Det()) < lin.Epsilon {
			return nil, &SingularInertiaError{Reason: "inverse inertia tensor is not invertible"}
		}
		b.InertiaBody = *lin.NewM3().Inv(inv)
	}

	b.OrientationQuaternion = *lin.NewQ().SetM(&rotation)
	worldPoly := *polyBody
	worldPoly.Vertices = append([]lin.V3{}, polyBody.Vertices...)
	worldPoly.Edges = append([]Edge{}, polyBody.Edges...)
	worldPoly.Faces = append([]Face{}, polyBody.Faces...)
	b.PolyhedronWorld = &worldPoly

	b.update_rotation()
	if err := b.update_full(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewCuboidBody is the convenience constructor for a box-shaped body: its
// body-frame geometry is a NewCuboidPolyhedron and its inverse inertia
// tensor is the standard aligned-cuboid formula.
func NewCuboidBody(hx, hy, hz, massInverse float64, position lin.V3, rotation lin.M3,
	linearMomentum, angularMomentum lin.V3) (*RigidBody, error) {

	poly, err := NewCuboidPolyhedron(hx, hy, hz)
	if err != nil {
		return nil, err
	}
	var inertiaInv lin.M3
	if massInverse != 0 {
		mass := 1.0 / massInverse
		x2, y2, z2 := (2*hx)*(2*hx), (2*hy)*(2*hy), (2*hz)*(2*hz)
		ix := mass / 12.0 * (y2 + z2)
		iy := mass / 12.0 * (x2 + z2)
		iz := mass / 12.0 * (x2 + y2)
		inertiaInv.SetS(1/ix, 0, 0, 0, 1/iy, 0, 0, 0, 1/iz)
	}
	return NewRigidBody(poly, massInverse, inertiaInv, position, rotation, linearMomentum, angularMomentum)
}

// NewMeshBody is the convenience constructor for a body whose body-frame
// geometry comes from a triangle mesh (see NewMeshPolyhedron).
func NewMeshBody(vertices []lin.V3, triangles [][3]int, massInverse float64, inertiaBodyInverse lin.M3,
	position lin.V3, rotation lin.M3, linearMomentum, angularMomentum lin.V3) (*RigidBody, error) {

	poly, err := NewMeshPolyhedron(vertices, triangles)
	if err != nil {
		return nil, err
	}
	return NewRigidBody(poly, massInverse, inertiaBodyInverse, position, rotation, linearMomentum, angularMomentum)
}

func (b *RigidBody) movable() bool { return b.MassInverse != 0 }

// update_velocity recomputes linear_velocity = mass_inverse * linear_momentum.
func (b *RigidBody) update_velocity() {
	b.LinearVelocity = *lin.NewV3().Scale(&b.LinearMomentum, b.MassInverse)
}

// update_angular_velocity recomputes angular_velocity = inertia_world_inverse * angular_momentum.
func (b *RigidBody) update_angular_velocity() {
	b.AngularVelocity = *lin.NewV3().MultMv(&b.InertiaWorldInverse, &b.AngularMomentum)
}

// update_rotation re-normalizes the orientation quaternion, converts it to
// a rotation matrix, and refreshes the world inertia tensors.
func (b *RigidBody) update_rotation() {
	b.OrientationQuaternion.Unit()
	b.RotationMatrix = *lin.NewM3().SetQ(&b.OrientationQuaternion)

	if b.movable() {
		r := &b.RotationMatrix
		rt := lin.NewM3().Transpose(r)
		riBody := lin.NewM3().Mult(r, &b.InertiaBody)
		riBodyInv := lin.NewM3().Mult(r, &b.InertiaBodyInverse)
		b.InertiaWorld = *lin.NewM3().Mult(riBody, rt)
		b.InertiaWorldInverse = *lin.NewM3().Mult(riBodyInv, rt)
	}
}

// update_geometry writes each body-frame vertex, rotated and translated,
// into the world polyhedron, then refreshes its edges/face normals and
// the body's AABB.
func (b *RigidBody) update_geometry() error {
	wp := b.PolyhedronWorld
	for i := range b.PolyhedronBody.Vertices {
		v := lin.NewV3().MultQ(&b.PolyhedronBody.Vertices[i], &b.OrientationQuaternion)
		v.Add(v, &b.Position)
		wp.Vertices[i] = *v
	}
	if err := wp.update(); err != nil {
		return err
	}
	b.Aabb = computeAabb(wp.Vertices)
	return nil
}

func computeAabb(vertices []lin.V3) Abox {
	if len(vertices) == 0 {
		return Abox{}
	}
	min, max := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return Abox{Min: min, Max: max}
}

// update_full runs the whole update chain: velocity, the angular chain
// (angular velocity, rotation/inertia, angular momentum), then geometry.
func (b *RigidBody) update_full() error {
	b.update_velocity()
	b.update_angular_velocity()
	b.update_rotation()
	b.AngularMomentum = *lin.NewV3().MultMv(&b.InertiaWorld, &b.AngularVelocity)
	return b.update_geometry()
}

// integrate advances position, linear momentum, orientation, and angular
// momentum by dt using semi-implicit Euler, then calls update_full.
// Immovable bodies have zero force/torque/momenta throughout, so the
// integration leaves them unchanged.
func (b *RigidBody) integrate(dt float64) error {
	b.Position.Add(&b.Position, lin.NewV3().Scale(&b.LinearVelocity, dt))
	b.LinearMomentum.Add(&b.LinearMomentum, lin.NewV3().Scale(&b.Force, dt))

	spin := lin.Q{X: b.AngularVelocity.X, Y: b.AngularVelocity.Y, Z: b.AngularVelocity.Z, W: 0}
	dq := lin.NewQ().Mult(&spin, &b.OrientationQuaternion)
	dq.Scale(0.5 * dt)
	b.OrientationQuaternion.Add(&b.OrientationQuaternion, dq)

	b.AngularMomentum.Add(&b.AngularMomentum, lin.NewV3().Scale(&b.Torque, dt))
	return b.update_full()
}

func (b *RigidBody) clearForces() {
	b.Force = lin.V3{}
	b.Torque = lin.V3{}
}

// kineticEnergy returns translational + rotational kinetic energy. Used
// only by tests and debug tooling, never by the tick itself.
func (b *RigidBody) kineticEnergy() float64 {
	if !b.movable() {
		return 0
	}
	speed := b.LinearVelocity.Len()
	translational := 0.5 * speed * speed / b.MassInverse
	iw := lin.NewV3().MultMv(&b.InertiaWorld, &b.AngularVelocity)
	rotational := 0.5 * iw.Dot(&b.AngularVelocity)
	return translational + rotational
}
