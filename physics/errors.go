// Copyright © 2024 Galvanized Logic Inc.

package physics

import "fmt"

// DegenerateGeometryError is returned from polyhedron construction when a
// zero-length edge, coincident vertices, or a non-finite face normal is
// found. The body is rejected rather than constructed half-valid.
type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: %s", e.Reason)
}

// SingularInertiaError is returned from rigid-body construction when a
// movable body's supplied inverse inertia tensor cannot be inverted.
type SingularInertiaError struct {
	Reason string
}

func (e *SingularInertiaError) Error() string {
	return fmt.Sprintf("singular inertia tensor: %s", e.Reason)
}
