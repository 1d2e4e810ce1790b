// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"
	"testing"

	"github.com/ironvale/rigidphys/math/lin"
)

func TestNewCuboidBodyRotationMatrixIsOrthonormal(t *testing.T) {
	rotation := *lin.NewM3().SetAa(0, 1, 0, lin.Rad(37))
	b, err := NewCuboidBody(1, 2, 3, 1, lin.V3{}, rotation, lin.V3{}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := &b.RotationMatrix
	rt := lin.NewM3().Transpose(r)
	product := lin.NewM3().Mult(r, rt)
	identity := lin.NewM3I()
	if !product.Aeq(identity) {
		t.Errorf("R * R^T != I: %+v", product)
	}
	if det := r.Det(); math.Abs(det-1) > 1e-9 {
		t.Errorf("det(R) = %v, want 1", det)
	}
}

func TestImmovableBodyHasZeroMassInverseAndStaysAtRest(t *testing.T) {
	b, err := NewCuboidBody(5, 0.5, 5, 0, lin.V3{Y: -10}, *lin.NewM3I(), lin.V3{}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.movable() {
		t.Fatal("a body constructed with mass_inverse=0 must report movable()==false")
	}
	if b.LinearMomentum.Len() != 0 || b.AngularMomentum.Len() != 0 {
		t.Error("an immovable body must have zero linear and angular momentum")
	}
}

func TestNewRigidBodySingularInertiaIsRejected(t *testing.T) {
	poly, err := NewCuboidPolyhedron(1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = NewRigidBody(poly, 1, lin.M3{}, lin.V3{}, *lin.NewM3I(), lin.V3{}, lin.V3{})
	if err == nil {
		t.Fatal("expected an error for a singular (all-zero) inverse inertia tensor")
	}
	if _, ok := err.(*SingularInertiaError); !ok {
		t.Errorf("expected *SingularInertiaError, got %T", err)
	}
}

func TestIntegrateAdvancesPositionBySemiImplicitEuler(t *testing.T) {
	b, err := NewCuboidBody(1, 1, 1, 1, lin.V3{}, *lin.NewM3I(), lin.V3{X: 2}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.integrate(0.5); err != nil {
		t.Fatalf("integrate: %v", err)
	}
	// mass_inverse=1, so linear_velocity == linear_momentum; with no force,
	// position advances by velocity*dt = 2*0.5 = 1 along X.
	if want := 1.0; !lin.Aeq(b.Position.X, want) {
		t.Errorf("Position.X = %v, want %v", b.Position.X, want)
	}
}

func TestWorldPolyhedronVertexCountMatchesBodyPolyhedron(t *testing.T) {
	b, err := NewCuboidBody(1, 1, 1, 1, lin.V3{X: 3, Y: -1}, *lin.NewM3I(), lin.V3{}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.PolyhedronWorld.Vertices) != len(b.PolyhedronBody.Vertices) {
		t.Fatalf("world vertex count %d != body vertex count %d",
			len(b.PolyhedronWorld.Vertices), len(b.PolyhedronBody.Vertices))
	}
	want := lin.NewV3().Add(&b.PolyhedronBody.Vertices[0], &b.Position)
	got := b.PolyhedronWorld.Vertices[0]
	if !got.Aeq(want) {
		t.Errorf("world vertex 0 = %+v, want %+v", got, want)
	}
}

func TestKineticEnergyZeroForImmovableBody(t *testing.T) {
	b, err := NewCuboidBody(1, 1, 1, 0, lin.V3{}, *lin.NewM3I(), lin.V3{}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e := b.kineticEnergy(); e != 0 {
		t.Errorf("kineticEnergy() = %v, want 0 for an immovable body", e)
	}
}
