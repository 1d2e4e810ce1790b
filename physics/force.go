// Copyright © 2024 Galvanized Logic Inc.

package physics

// force.go accumulates per-tick forces and torques on movable bodies,
// grounded on original_source/rigid_body_core/src/simulation/force.rs'
// calculate_external_force/calculate_external_torque registration idiom.

import "github.com/ironvale/rigidphys/math/lin"

// ForceFunc computes a force and torque on a body given its current linear
// velocity. Registered functions are summed every tick for every movable
// body; immovable bodies are skipped entirely.
type ForceFunc func(b *RigidBody) (force, torque lin.V3)

// Gravity returns a ForceFunc applying constant downward acceleration g
// (meters/second², positive magnitude) scaled by the body's mass.
func Gravity(g float64) ForceFunc {
	return func(b *RigidBody) (lin.V3, lin.V3) {
		mass := 1.0 / b.MassInverse
		return lin.V3{Y: -g * mass}, lin.V3{}
	}
}

// LinearDrag returns a ForceFunc opposing linear velocity proportionally,
// eg. LinearDrag(0.1) applies -0.1*velocity.
func LinearDrag(coefficient float64) ForceFunc {
	return func(b *RigidBody) (lin.V3, lin.V3) {
		f := lin.NewV3().Scale(&b.LinearVelocity, -coefficient)
		return *f, lin.V3{}
	}
}

// accumulateForces sums every registered ForceFunc into each movable
// body's Force/Torque accumulators.
func accumulateForces(bodies []*RigidBody, forces []ForceFunc) {
	for _, b := range bodies {
		if !b.movable() {
			continue
		}
		for _, f := range forces {
			force, torque := f(b)
			b.Force.Add(&b.Force, &force)
			b.Torque.Add(&b.Torque, &torque)
		}
	}
}
