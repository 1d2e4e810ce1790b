// Copyright © 2024 Galvanized Logic Inc.

package physics

// polyhedron.go builds and maintains the convex-polyhedron geometry every
// rigid body carries: a vertex list, an edge list with cached unit
// directions, and a face list with cached outward normals and the
// bounding/incident edge sets used by the narrow phase. Function names stay
// close to the original_source/rigid_body_core math/polyhedron.rs they were
// ported from, to ease comparing the two when debugging a narrow-phase bug.

import (
	"math"

	"github.com/ironvale/rigidphys/math/lin"
)

// Edge is an indexed pair of vertices plus the cached unit direction from
// vertices[Start] to vertices[End]. The direction is recomputed whenever
// the owning polyhedron's vertices move.
type Edge struct {
	Start, End int
	Dir        lin.V3
}

// Face is an indexed vertex loop plus the edges that border or merely touch
// it, and the cached outward unit normal.
//
// BoundingEdges are edges that share exactly two of the face's vertices.
// IncidentEdges additionally include edges sharing exactly one vertex.
// Flip records whether the initial normal computation pointed into the
// polyhedron's centroid and must be negated on every later update.
type Face struct {
	Vertices      []int
	BoundingEdges []int
	IncidentEdges []int
	Normal        lin.V3
	Flip          bool
}

// Polyhedron is the convex-hull geometry shared by a rigid body's
// body-frame (constant) and world-frame (derived each tick) representations.
type Polyhedron struct {
	Vertices []lin.V3
	Edges    []Edge
	Faces    []Face
}

// NewPolyhedron builds a Polyhedron from a vertex list, a list of
// (start,end) edge index pairs, and a list of faces expressed as
// vertex-index loops.
func NewPolyhedron(vertices []lin.V3, edgePairs [][2]int, faceLoops [][]int) (*Polyhedron, error) {
	p := &Polyhedron{
		Vertices: append([]lin.V3{}, vertices...),
		Edges:    make([]Edge, len(edgePairs)),
	}
	for i, pair := range edgePairs {
		p.Edges[i].Start, p.Edges[i].End = pair[0], pair[1]
	}
	if err := p.update_edges(); err != nil {
		return nil, err
	}
	p.Faces = make([]Face, len(faceLoops))
	for i, loop := range faceLoops {
		p.Faces[i].Vertices = append([]int{}, loop...)
		p.find_face_edges(i)
		if err := p.init_face_normal(i); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewCuboidPolyhedron builds the eight-vertex, twelve-edge, six-face
// geometry of a box with the given half-extents, centered at the origin.
func NewCuboidPolyhedron(hx, hy, hz float64) (*Polyhedron, error) {
	vertices := []lin.V3{
		{X: -hx, Y: -hy, Z: -hz}, // 0
		{X: +hx, Y: -hy, Z: -hz}, // 1
		{X: +hx, Y: +hy, Z: -hz}, // 2
		{X: -hx, Y: +hy, Z: -hz}, // 3
		{X: -hx, Y: -hy, Z: +hz}, // 4
		{X: +hx, Y: -hy, Z: +hz}, // 5
		{X: +hx, Y: +hy, Z: +hz}, // 6
		{X: -hx, Y: +hy, Z: +hz}, // 7
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
	}
	// Listing the connecting edges before the front face puts two
	// non-parallel edges first among every face's bounding edges, which
	// the face normal is computed from.
	faces := [][]int{
		{0, 1, 2, 3}, // back  (-Z)
		{4, 7, 6, 5}, // front (+Z)
		{0, 3, 7, 4}, // left  (-X)
		{1, 5, 6, 2}, // right (+X)
		{0, 4, 5, 1}, // bottom (-Y)
		{3, 2, 6, 7}, // top    (+Y)
	}
	return NewPolyhedron(vertices, edges, faces)
}

// NewMeshPolyhedron treats each triangle independently as a face and each
// triangle edge independently as an edge; duplicate edges/vertices are
// accepted. The input must still describe a convex shape for collisions
// to be correct.
func NewMeshPolyhedron(vertices []lin.V3, triangles [][3]int) (*Polyhedron, error) {
	edgePairs := make([][2]int, 0, len(triangles)*3)
	faceLoops := make([][]int, 0, len(triangles))
	for _, tri := range triangles {
		a, b, c := tri[0], tri[1], tri[2]
		edgePairs = append(edgePairs, [2]int{a, b}, [2]int{b, c}, [2]int{c, a})
		faceLoops = append(faceLoops, []int{a, b, c})
	}
	return NewPolyhedron(vertices, edgePairs, faceLoops)
}

// update refreshes every edge direction, then every face normal, after the
// vertices have moved (eg: a rigid body's world_update copying rotated and
// translated body-frame vertices into its world polyhedron).
func (p *Polyhedron) update() error {
	if err := p.update_edges(); err != nil {
		return err
	}
	for i := range p.Faces {
		if err := p.update_face_normal(i); err != nil {
			return err
		}
	}
	return nil
}

func (p *Polyhedron) update_edges() error {
	for i := range p.Edges {
		e := &p.Edges[i]
		dir := lin.NewV3().Sub(&p.Vertices[e.End], &p.Vertices[e.Start])
		if dir.LenSqr() < lin.Epsilon*lin.Epsilon {
			return &DegenerateGeometryError{Reason: "edge endpoints coincide"}
		}
		dir.Unit()
		e.Dir = *dir
	}
	return nil
}

// find_face_edges classifies every polyhedron edge against face i's vertex
// loop as bounding (two shared vertices), incident (one shared vertex), or
// unrelated (zero shared vertices), preserving discovery order.
func (p *Polyhedron) find_face_edges(i int) {
	f := &p.Faces[i]
	inFace := func(v int) bool {
		for _, fv := range f.Vertices {
			if fv == v {
				return true
			}
		}
		return false
	}
	for ei, e := range p.Edges {
		shared := 0
		if inFace(e.Start) {
			shared++
		}
		if inFace(e.End) {
			shared++
		}
		switch shared {
		case 2:
			f.BoundingEdges = append(f.BoundingEdges, ei)
			f.IncidentEdges = append(f.IncidentEdges, ei)
		case 1:
			f.IncidentEdges = append(f.IncidentEdges, ei)
		}
	}
}

func (p *Polyhedron) centroid() lin.V3 {
	c := lin.NewV3()
	for i := range p.Vertices {
		c.Add(c, &p.Vertices[i])
	}
	if len(p.Vertices) > 0 {
		c.Scale(c, 1.0/float64(len(p.Vertices)))
	}
	return *c
}

func (p *Polyhedron) face_candidate_normal(i int) lin.V3 {
	f := &p.Faces[i]
	e0 := p.Edges[f.BoundingEdges[0]]
	e1 := p.Edges[f.BoundingEdges[1]]
	n := lin.NewV3().Cross(&e0.Dir, &e1.Dir)
	n.Unit()
	return *n
}

// init_face_normal computes face i's first normal and decides the flip flag:
// if the centroid lies on the normal's positive side of the face-anchor
// plane, the normal actually points inward and must be negated, now and on
// every future update.
func (p *Polyhedron) init_face_normal(i int) error {
	f := &p.Faces[i]
	n := p.face_candidate_normal(i)
	if !finiteV3(&n) {
		return &DegenerateGeometryError{Reason: "face normal has a non-finite component"}
	}
	anchor := p.Vertices[p.Edges[f.BoundingEdges[0]].Start]
	c := p.centroid()
	diff := lin.NewV3().Sub(&c, &anchor)
	if diff.Dot(&n) > 0 {
		f.Flip = true
		n.Scale(&n, -1)
	}
	f.Normal = n
	return nil
}

// update_face_normal recomputes face i's normal from its (possibly moved)
// bounding edges, applying the flip decided at construction time.
func (p *Polyhedron) update_face_normal(i int) error {
	f := &p.Faces[i]
	n := p.face_candidate_normal(i)
	if f.Flip {
		n.Scale(&n, -1)
	}
	if !finiteV3(&n) {
		return &DegenerateGeometryError{Reason: "face normal has a non-finite component"}
	}
	f.Normal = n
	return nil
}

// EnclosingPlanes returns, for face i, one plane per bounding edge: the
// plane's position is the edge's start vertex and its direction is
// edge.Dir × face.Normal, negated if needed so the plane points away from
// the face's own centroid. These are recomputed on demand, never cached.
func (p *Polyhedron) EnclosingPlanes(i int) []lin.Plane {
	f := &p.Faces[i]
	faceCentroid := lin.NewV3()
	for _, vi := range f.Vertices {
		faceCentroid.Add(faceCentroid, &p.Vertices[vi])
	}
	faceCentroid.Scale(faceCentroid, 1.0/float64(len(f.Vertices)))

	planes := make([]lin.Plane, len(f.BoundingEdges))
	for k, ei := range f.BoundingEdges {
		e := p.Edges[ei]
		dir := lin.NewV3().Cross(&e.Dir, &f.Normal)
		anchor := p.Vertices[e.Start]
		toCentroid := lin.NewV3().Sub(faceCentroid, &anchor)
		if toCentroid.Dot(dir) > 0 {
			dir.Scale(dir, -1)
		}
		planes[k] = *lin.NewPlane(&anchor, dir)
	}
	return planes
}

func finiteV3(v *lin.V3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
