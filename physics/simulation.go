// Copyright © 2024 Galvanized Logic Inc.

package physics

// simulation.go is the Simulation driver and its per-tick pipeline,
// grounded on the teacher's move/move.go Step (predict -> broadphase ->
// narrowphase -> solve) staging, restructured into spec order: force
// accumulation -> integrate -> cage containment -> broad phase -> narrow
// phase (per overlapping pair: separating-plane check, or bisect +
// contacts + impulses) -> clear forces.

import (
	"log/slog"

	"github.com/ironvale/rigidphys/math/lin"
)

// bodySnapshot captures a body's pose and momenta at the moment it was
// added, so Reset can restore it later.
type bodySnapshot struct {
	position lin.V3
	rotation lin.Q
	linear   lin.V3
	angular  lin.V3
}

// Simulation owns the ordered body list, the collision table, the
// registered force functions, and an optional bounding cage.
type Simulation struct {
	bodies    []*RigidBody
	snapshots []bodySnapshot
	Forces    []ForceFunc
	table     *CollisionTable
	cage      *BoundingCage
	changed   bool
}

// NewSimulation returns an empty simulation with the default gravity
// force registered, matching the teacher's Simulate's built-in gravity.
func NewSimulation() *Simulation {
	return &Simulation{Forces: []ForceFunc{Gravity(9.81)}}
}

// Bodies returns every body currently in the simulation, including
// bounding-cage walls, in insertion order.
func (s *Simulation) Bodies() []*RigidBody { return s.bodies }

// addBodyRaw appends a body without taking a pose/momenta snapshot; used
// by NewBoundingCage for its immovable walls, which are never reset.
func (s *Simulation) addBodyRaw(b *RigidBody) {
	s.bodies = append(s.bodies, b)
	s.changed = true
}

// AddBody appends a movable or immovable body to the simulation and
// returns its UID. Its current pose/momenta become the reset snapshot.
func (s *Simulation) AddBody(b *RigidBody) UID {
	s.bodies = append(s.bodies, b)
	s.snapshots = append(s.snapshots, bodySnapshot{
		position: b.Position,
		rotation: b.OrientationQuaternion,
		linear:   b.LinearMomentum,
		angular:  b.AngularMomentum,
	})
	s.changed = true
	return b.UID
}

// Reset restores every snapshotted body to its initial pose and momenta.
// Bounding-cage walls (added via addBodyRaw, no snapshot) are unaffected.
func (s *Simulation) Reset() {
	for i, snap := range s.snapshots {
		b := s.bodies[i]
		b.Position = snap.position
		b.OrientationQuaternion = snap.rotation
		b.LinearMomentum = snap.linear
		b.AngularMomentum = snap.angular
		b.clearForces()
		b.update_full()
	}
}

// SetBoundingCage replaces any existing cage with a new one spanning
// (min,max). The six wall bodies are appended to the simulation.
func (s *Simulation) SetBoundingCage(min, max lin.V3) error {
	cage, err := NewBoundingCage(s, min, max)
	if err != nil {
		return err
	}
	s.cage = cage
	return nil
}

// CollisionTable returns the current collision table for debug/render use.
func (s *Simulation) CollisionTable() *CollisionTable { return s.table }

// Tick advances the simulation by dt, running the full fixed pipeline.
func (s *Simulation) Tick(dt float64) {
	if s.changed {
		s.table = NewCollisionTable(len(s.bodies))
		s.table.Generate(s.bodies)
		s.changed = false
	}

	accumulateForces(s.bodies, s.Forces)
	for _, b := range s.bodies {
		if b.movable() {
			if err := b.integrate(dt); err != nil {
				slog.Warn("body integration failed", "error", err)
			}
		}
	}

	if s.cage != nil {
		s.cage.ApplyContainment(s.bodies)
	}

	s.table.Update(s.bodies)
	s.table.ResetColliding()

	for j := range s.bodies {
		for i := 0; i < j; i++ {
			if s.bodies[i].movable() || s.bodies[j].movable() {
				s.resolvePair(i, j)
			}
		}
	}

	for _, b := range s.bodies {
		b.clearForces()
	}
}

// resolvePair runs the narrow phase for one AABB-overlapping pair: a
// separating-plane check, and on failure, bisection, contact enumeration,
// and impulse application; the broad phase is re-run afterwards since
// impulses move bodies.
func (s *Simulation) resolvePair(i, j int) {
	pair := s.table.Pair(i, j)
	if !pair.AabbOverlap() {
		return
	}
	if check_for_separating_plane(i, j, s.bodies, pair) {
		return
	}

	plane, ok := resolve_interpenetration(i, j, s.bodies, pair)
	if !ok {
		return
	}
	pair.Colliding = true
	pair.Contacts = enumerate_contacts(&plane, s.bodies)
	if len(pair.Contacts) == 0 {
		slog.Warn("bisection succeeded but no contacts were enumerated", "bodyA", i, "bodyB", j)
	}
	for k := range pair.Contacts {
		apply_impulse(&pair.Contacts[k], s.bodies)
	}
	s.table.Update(s.bodies)
}
