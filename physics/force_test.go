// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"testing"

	"github.com/ironvale/rigidphys/math/lin"
)

func TestGravityForceScalesWithMass(t *testing.T) {
	b, err := NewCuboidBody(1, 1, 1, 0.5, lin.V3{}, *lin.NewM3I(), lin.V3{}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	force, torque := Gravity(9.81)(b)
	if want := -9.81 * 2.0; !lin.Aeq(force.Y, want) {
		t.Errorf("force.Y = %v, want %v", force.Y, want)
	}
	if torque.Len() != 0 {
		t.Errorf("gravity must not apply torque, got %+v", torque)
	}
}

func TestLinearDragOpposesVelocity(t *testing.T) {
	b, err := NewCuboidBody(1, 1, 1, 1, lin.V3{}, *lin.NewM3I(), lin.V3{X: 4}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	force, torque := LinearDrag(0.1)(b)
	want := lin.V3{X: -0.4}
	if !force.Aeq(&want) {
		t.Errorf("force = %+v, want %+v", force, want)
	}
	if torque.Len() != 0 {
		t.Errorf("linear drag must not apply torque, got %+v", torque)
	}
}

func TestAccumulateForcesSkipsImmovableBodies(t *testing.T) {
	movable, err := NewCuboidBody(1, 1, 1, 1, lin.V3{}, *lin.NewM3I(), lin.V3{X: 2}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	immovable, err := NewCuboidBody(1, 1, 1, 0, lin.V3{}, *lin.NewM3I(), lin.V3{}, lin.V3{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accumulateForces([]*RigidBody{movable, immovable}, []ForceFunc{Gravity(9.81), LinearDrag(0.1)})

	if movable.Force.Y == 0 {
		t.Error("a movable body should accumulate gravity")
	}
	if immovable.Force.Len() != 0 {
		t.Errorf("an immovable body must not accumulate force, got %+v", immovable.Force)
	}
}
