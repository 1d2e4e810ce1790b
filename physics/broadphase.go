// Copyright © 2024 Galvanized Logic Inc.

package physics

// broadphase.go maintains, for every axis independently, a sorted list of
// interval endpoints over the bodies' AABBs, and from them a pairwise
// axis-overlap bit stored in the CollisionTable. Grounded on
// original_source/rigid_body_core/src/simulation/bounding_box_collision_manager.rs
// for the sweep/insertion-sort algorithm; the bid-indexed pair bookkeeping
// idiom follows the teacher's broad.go.

const CollisionEpsilon = 1e-3

// endKind distinguishes the low and high markers of a body's interval on
// one axis.
type endKind int

const (
	endLow endKind = iota
	endHigh
)

// axisMarker is one endpoint of one body's AABB interval on one axis.
type axisMarker struct {
	body  int
	end   endKind
	value float64
}

// BroadPhaseAxis is the sorted interval-endpoint list for one axis.
type BroadPhaseAxis struct {
	markers []axisMarker
}

// SeparatingPlane is the witness cache entry for one colliding-pair slot.
// Kind selects which payload fields are meaningful.
type SeparatingPlaneKind int

const (
	PlaneNone SeparatingPlaneKind = iota
	PlaneFace
	PlaneEdge
)

type SeparatingPlane struct {
	Kind SeparatingPlaneKind

	// Face witness: a face of FaceBody separates it from OtherBody.
	FaceBody        int
	FaceIndex       int
	FaceVertexIndex int

	// Edge witness: an edge of PlaneBody and an edge of OtherBody
	// together define the separating plane.
	PlaneBody        int
	PlaneEdgeIndex   int
	PlaneVertexIndex int
	OtherBody        int
	OtherEdgeIndex   int
}

// PairState is the per-pair row of the CollisionTable.
type PairState struct {
	AxisOverlap [3]bool
	Plane       SeparatingPlane
	Contacts    []Contact
	Colliding   bool
}

// AabbOverlap returns true if all three axis-overlap bits are set.
func (p *PairState) AabbOverlap() bool {
	return p.AxisOverlap[0] && p.AxisOverlap[1] && p.AxisOverlap[2]
}

// CollisionTable is the lower-triangular table of PairState rows indexed by
// unordered body-index pairs, plus the three BroadPhaseAxis sweep lists.
type CollisionTable struct {
	n     int
	rows  []PairState
	Axes  [3]BroadPhaseAxis
}

// pairIndex maps an unordered pair (i,j), i != j, to its row in the
// lower-triangular table.
func pairIndex(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return j*(j-1)/2 + i
}

// NewCollisionTable allocates a table sized for n bodies. Stale rows from a
// previous generation are implicitly zeroed by this fresh allocation.
func NewCollisionTable(n int) *CollisionTable {
	rows := n * (n - 1) / 2
	if rows < 0 {
		rows = 0
	}
	return &CollisionTable{n: n, rows: make([]PairState, rows)}
}

// Pair returns the PairState for unordered pair (i,j).
func (t *CollisionTable) Pair(i, j int) *PairState {
	return &t.rows[pairIndex(i, j)]
}

// NumBodies returns the body count the table is sized for, letting debug
// tooling enumerate every (i,j) pair without reaching into internals.
func (t *CollisionTable) NumBodies() int { return t.n }

// Generate performs the initial full build of all three axis lists and
// AABB overlap bits for the given bodies.
func (t *CollisionTable) Generate(bodies []*RigidBody) {
	n := len(bodies)
	t.n = n
	t.rows = make([]PairState, n*(n-1)/2)
	for axis := 0; axis < 3; axis++ {
		t.Axes[axis].markers = make([]axisMarker, 0, 2*n)
		for i, b := range bodies {
			lo, hi := axisExtent(b, axis)
			t.Axes[axis].markers = append(t.Axes[axis].markers,
				axisMarker{body: i, end: endLow, value: lo - CollisionEpsilon},
				axisMarker{body: i, end: endHigh, value: hi + CollisionEpsilon})
		}
		sortMarkers(t.Axes[axis].markers)
		t.sweepGenerate(axis)
	}
}

func axisExtent(b *RigidBody, axis int) (lo, hi float64) {
	switch axis {
	case 0:
		return b.Aabb.Min.X, b.Aabb.Max.X
	case 1:
		return b.Aabb.Min.Y, b.Aabb.Max.Y
	default:
		return b.Aabb.Min.Z, b.Aabb.Max.Z
	}
}

// markerLess implements the sort order: by value, with HIGH sorting before
// LOW when values are equal so a just-closed interval doesn't collide with
// one that just opened at the same coordinate.
func markerLess(a, b axisMarker) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	return a.end == endHigh && b.end == endLow
}

func sortMarkers(m []axisMarker) {
	// insertion sort: cheap for the small, already-nearly-sorted lists
	// broad phase deals with, and it is also the update-pass algorithm
	// below, so a single implementation serves both uses.
	for i := 1; i < len(m); i++ {
		for j := i; j > 0 && markerLess(m[j], m[j-1]); j-- {
			m[j], m[j-1] = m[j-1], m[j]
		}
	}
}

// sweepGenerate walks the freshly sorted axis list once, recording
// axis-overlap true for every pair active at the same time.
func (t *CollisionTable) sweepGenerate(axis int) {
	active := map[int]bool{}
	for _, m := range t.Axes[axis].markers {
		switch m.end {
		case endLow:
			for other := range active {
				t.Pair(m.body, other).AxisOverlap[axis] = true
			}
			active[m.body] = true
		case endHigh:
			delete(active, m.body)
		}
	}
}

// Update re-derives each axis's marker values from the bodies' AABBs, and
// performs an insertion-sort pass per axis; every adjacent swap flips the
// axis-overlap bit of the swapped pair to the current interval-overlap
// result.
func (t *CollisionTable) Update(bodies []*RigidBody) {
	for axis := 0; axis < 3; axis++ {
		markers := t.Axes[axis].markers
		for i := range markers {
			lo, hi := axisExtent(bodies[markers[i].body], axis)
			if markers[i].end == endLow {
				markers[i].value = lo - CollisionEpsilon
			} else {
				markers[i].value = hi + CollisionEpsilon
			}
		}
		t.insertionPass(axis)
	}
}

func (t *CollisionTable) insertionPass(axis int) {
	markers := t.Axes[axis].markers
	for i := 1; i < len(markers); i++ {
		for j := i; j > 0 && markerLess(markers[j], markers[j-1]); j-- {
			a, b := markers[j], markers[j-1]
			markers[j], markers[j-1] = b, a
			if a.body != b.body {
				overlap := t.intervalsOverlap(axis, a.body, b.body)
				t.Pair(a.body, b.body).AxisOverlap[axis] = overlap
			}
		}
	}
	t.Axes[axis].markers = markers
}

// intervalsOverlap re-derives whether bodies i and j currently overlap on
// axis directly from the (already refreshed) marker values.
func (t *CollisionTable) intervalsOverlap(axis, i, j int) bool {
	var iLo, iHi, jLo, jHi float64
	for _, m := range t.Axes[axis].markers {
		switch {
		case m.body == i && m.end == endLow:
			iLo = m.value
		case m.body == i && m.end == endHigh:
			iHi = m.value
		case m.body == j && m.end == endLow:
			jLo = m.value
		case m.body == j && m.end == endHigh:
			jHi = m.value
		}
	}
	return iHi >= jLo && jHi >= iLo
}

// ResetColliding clears every pair's Colliding flag at the start of a tick.
func (t *CollisionTable) ResetColliding() {
	for i := range t.rows {
		t.rows[i].Colliding = false
	}
}
