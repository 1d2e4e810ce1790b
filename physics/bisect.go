// Copyright © 2024 Galvanized Logic Inc.

package physics

// bisect.go resolves interpenetration along a single separating direction
// by repeated halving, grounded on
// original_source/rigid_body_core/src/simulation/collision_manager.rs's
// bisection loop.

import (
	"log/slog"
	"math"

	"github.com/ironvale/rigidphys/math/lin"
)

// boundingRadius is ½·√Σ(extent+2ε)² over a body's AABB, used as the
// initial bisection guess.
func boundingRadius(b *RigidBody) float64 {
	ex := b.Aabb.Max.X - b.Aabb.Min.X + 2*CollisionEpsilon
	ey := b.Aabb.Max.Y - b.Aabb.Min.Y + 2*CollisionEpsilon
	ez := b.Aabb.Max.Z - b.Aabb.Min.Z + 2*CollisionEpsilon
	return 0.5 * math.Sqrt(ex*ex+ey*ey+ez*ez)
}

// resolve_interpenetration bisects bodies i and j apart along the line
// between their centers (or the X axis if they coincide) until
// check_for_separating_plane succeeds and the measured minimum separation
// is within CollisionEpsilon, or until the step underflows. Returns the
// plane found, if any.
func resolve_interpenetration(i, j int, bodies []*RigidBody, pair *PairState) (SeparatingPlane, bool) {
	a, b := bodies[i], bodies[j]

	delta := lin.NewV3().Sub(&b.Position, &a.Position)
	dir := *delta
	if delta.LenSqr() < lin.Epsilon*lin.Epsilon {
		dir = lin.V3{X: 1}
	} else {
		dir.Unit()
	}

	bisect := boundingRadius(a) + boundingRadius(b) - delta.Len()
	massSum := a.MassInverse + b.MassInverse
	if massSum == 0 {
		return SeparatingPlane{}, false // both immovable, nothing to do.
	}
	ratioA := a.MassInverse / massSum
	ratioB := b.MassInverse / massSum

	for math.Abs(bisect) >= lin.Epsilon {
		translate(a, &dir, -ratioA*bisect)
		translate(b, &dir, ratioB*bisect)

		if check_for_separating_plane(i, j, bodies, pair) {
			if sep, ok := measure_minimum_separation(&pair.Plane, bodies); !ok || sep <= CollisionEpsilon {
				return pair.Plane, true
			}
			bisect = -bisect / 2
		} else {
			bisect = bisect / 2
		}
	}
	slog.Warn("interpenetration bisection failed to converge", "bodyA", i, "bodyB", j)
	return SeparatingPlane{}, false
}

func translate(b *RigidBody, dir *lin.V3, amount float64) {
	if !b.movable() {
		return
	}
	b.Position.Add(&b.Position, lin.NewV3().Scale(dir, amount))
	b.update_geometry()
}
