// Copyright © 2024 Galvanized Logic Inc.

package physics

// cage.go builds an optional world bounding cage from six immovable walls
// and clamps bodies that drift outside it before the narrow phase runs,
// grounded on original_source/rigid_body_core/src/simulation/mod.rs's
// containment pass.

import "github.com/ironvale/rigidphys/math/lin"

const cageWallThickness = 1.0

// BoundingCage is six immovable cuboid walls arranged just outside an
// axis-aligned box (min,max), plus a cheap per-tick containment clamp.
type BoundingCage struct {
	Min, Max lin.V3
	WallUIDs [6]UID
}

// NewBoundingCage builds the six wall bodies for (min,max) and appends
// them to sim. Returns the cage; the caller keeps it to pass to
// ApplyContainment each tick.
func NewBoundingCage(sim *Simulation, min, max lin.V3) (*BoundingCage, error) {
	c := &BoundingCage{Min: min, Max: max}
	center := lin.NewV3().Add(&min, &max)
	center.Scale(center, 0.5)
	size := lin.NewV3().Sub(&max, &min)
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2

	walls := []struct {
		pos lin.V3
		hx, hy, hz float64
	}{
		{lin.V3{X: min.X - cageWallThickness, Y: center.Y, Z: center.Z}, cageWallThickness, hy, hz}, // -X
		{lin.V3{X: max.X + cageWallThickness, Y: center.Y, Z: center.Z}, cageWallThickness, hy, hz}, // +X
		{lin.V3{X: center.X, Y: min.Y - cageWallThickness, Z: center.Z}, hx, cageWallThickness, hz}, // -Y
		{lin.V3{X: center.X, Y: max.Y + cageWallThickness, Z: center.Z}, hx, cageWallThickness, hz}, // +Y
		{lin.V3{X: center.X, Y: center.Y, Z: min.Z - cageWallThickness}, hx, hy, cageWallThickness}, // -Z
		{lin.V3{X: center.X, Y: center.Y, Z: max.Z + cageWallThickness}, hx, hy, cageWallThickness}, // +Z
	}
	for i, w := range walls {
		body, err := NewCuboidBody(w.hx, w.hy, w.hz, 0, w.pos, *lin.NewM3I(), lin.V3{}, lin.V3{})
		if err != nil {
			return nil, err
		}
		sim.addBodyRaw(body)
		c.WallUIDs[i] = body.UID
	}
	return c, nil
}

// ApplyContainment clamps every movable body whose AABB extends outside
// the cage back inside by the signed overshoot, refreshing its geometry.
// This runs before the narrow phase to stop bodies tunneling through the
// cage walls under numerical drift.
func (c *BoundingCage) ApplyContainment(bodies []*RigidBody) {
	for _, b := range bodies {
		if !b.movable() {
			continue
		}
		moved := false
		if b.Aabb.Min.X < c.Min.X {
			b.Position.X += c.Min.X - b.Aabb.Min.X
			moved = true
		} else if b.Aabb.Max.X > c.Max.X {
			b.Position.X += c.Max.X - b.Aabb.Max.X
			moved = true
		}
		if b.Aabb.Min.Y < c.Min.Y {
			b.Position.Y += c.Min.Y - b.Aabb.Min.Y
			moved = true
		} else if b.Aabb.Max.Y > c.Max.Y {
			b.Position.Y += c.Max.Y - b.Aabb.Max.Y
			moved = true
		}
		if b.Aabb.Min.Z < c.Min.Z {
			b.Position.Z += c.Min.Z - b.Aabb.Min.Z
			moved = true
		} else if b.Aabb.Max.Z > c.Max.Z {
			b.Position.Z += c.Max.Z - b.Aabb.Max.Z
			moved = true
		}
		if moved {
			b.update_geometry()
		}
	}
}
